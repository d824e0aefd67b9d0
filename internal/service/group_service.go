package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/potluck/internal/auth"
	"github.com/mmynk/potluck/internal/calculator"
	"github.com/mmynk/potluck/internal/middleware"
	"github.com/mmynk/potluck/internal/models"
	"github.com/mmynk/potluck/internal/storage"
	pb "github.com/mmynk/potluck/pkg/proto"
	"github.com/mmynk/potluck/pkg/proto/protoconnect"
)

const defaultCreatorName = "Admin"

// PublicGroupProcedures can be called without a session token.
var PublicGroupProcedures = []string{
	protoconnect.GroupServiceCreateGroupProcedure,
	protoconnect.GroupServiceJoinGroupProcedure,
	protoconnect.GroupServiceGetGroupByPublicIdProcedure,
}

// GroupService implements the GroupService: groups, membership, balances and settlements.
type GroupService struct {
	protoconnect.UnimplementedGroupServiceHandler
	store         storage.Store
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

var _ protoconnect.GroupServiceHandler = (*GroupService)(nil)

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, authenticator auth.Authenticator, jwtManager *auth.JWTManager) *GroupService {
	return &GroupService{
		store:         store,
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
}

// CreateGroup creates a group together with its admin member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	creatorName := strings.TrimSpace(req.Msg.CreatorName)
	if creatorName == "" {
		creatorName = defaultCreatorName
	}
	slog.Info("CreateGroup request received", "name", name, "creator", creatorName)

	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}
	if err := auth.ValidatePIN(req.Msg.Pin); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	pinHash, err := auth.HashPIN(req.Msg.Pin)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	admin := models.NewMember("", creatorName, pinHash, true)
	group := &models.Group{
		Name:    name,
		Members: []*models.Member{admin},
	}

	// Save to storage (generates ID, PublicID and CreatedAt)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, storageError(err)
	}

	token, err := s.jwtManager.Generate(admin)
	if err != nil {
		slog.Error("Failed to generate token", "member_id", admin.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Group created", "group_id", group.ID, "member_id", admin.ID)

	return connect.NewResponse(&pb.CreateGroupResponse{
		Group:    toProtoGroup(group),
		MemberId: admin.ID,
		IsAdmin:  true,
		Token:    token,
	}), nil
}

// JoinGroup logs an existing member in, or registers a new member when the
// name is not taken yet.
func (s *GroupService) JoinGroup(ctx context.Context, req *connect.Request[pb.JoinGroupRequest]) (*connect.Response[pb.JoinGroupResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	slog.Info("JoinGroup request received", "public_id", req.Msg.PublicId, "name", name)

	if name == "" || req.Msg.Pin == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name and PIN are required"))
	}

	group, err := s.store.GetGroupByPublicID(ctx, req.Msg.PublicId)
	if err != nil {
		slog.Warn("JoinGroup failed - group not found", "public_id", req.Msg.PublicId, "error", err)
		return nil, storageError(err)
	}

	message := "Logged in successfully"
	member, err := s.authenticator.Authenticate(ctx, group.ID, name, req.Msg.Pin)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrInvalidPIN):
		slog.Warn("JoinGroup failed - wrong PIN", "group_id", group.ID, "name", name)
		return nil, connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, auth.ErrMemberNotFound):
		member, err = s.authenticator.Register(ctx, group.ID, name, req.Msg.Pin)
		if err != nil {
			return nil, registerError(err)
		}
		message = "Joined group successfully"
		group.Members = append(group.Members, member)
	default:
		slog.Error("JoinGroup failed", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.jwtManager.Generate(member)
	if err != nil {
		slog.Error("Failed to generate token", "member_id", member.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("JoinGroup successful", "group_id", group.ID, "member_id", member.ID, "message", message)

	return connect.NewResponse(&pb.JoinGroupResponse{
		Group:    toProtoGroup(group),
		MemberId: member.ID,
		IsAdmin:  member.IsAdmin,
		Token:    token,
		Message:  message,
	}), nil
}

func registerError(err error) error {
	switch {
	case errors.Is(err, auth.ErrWeakPIN):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, auth.ErrMemberExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		slog.Error("Member registration failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}

// GetGroup retrieves the caller's group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	if err := authorizeGroup(ctx, req.Msg.GroupId); err != nil {
		return nil, err
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&pb.GetGroupResponse{Group: toProtoGroup(group)}), nil
}

// GetGroupByPublicId retrieves a group by its shareable ID, e.g. before joining.
func (s *GroupService) GetGroupByPublicId(ctx context.Context, req *connect.Request[pb.GetGroupByPublicIdRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	group, err := s.store.GetGroupByPublicID(ctx, req.Msg.PublicId)
	if err != nil {
		slog.Warn("GetGroupByPublicID failed", "public_id", req.Msg.PublicId, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&pb.GetGroupResponse{Group: toProtoGroup(group)}), nil
}

// UpdatePublicId renames the group's shareable ID. Admins only.
func (s *GroupService) UpdatePublicId(ctx context.Context, req *connect.Request[pb.UpdatePublicIdRequest]) (*connect.Response[pb.UpdatePublicIdResponse], error) {
	if err := authorizeGroup(ctx, req.Msg.GroupId); err != nil {
		return nil, err
	}

	publicID := strings.TrimSpace(req.Msg.PublicId)
	if publicID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("public_id required"))
	}

	member, err := s.store.GetMember(ctx, middleware.GetMemberID(ctx))
	if err != nil {
		return nil, storageError(err)
	}
	if !member.IsAdmin {
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("only admins can update the group ID"))
	}

	if err := s.store.UpdateGroupPublicID(ctx, req.Msg.GroupId, publicID); err != nil {
		slog.Warn("UpdatePublicID failed", "group_id", req.Msg.GroupId, "public_id", publicID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Group public ID updated", "group_id", req.Msg.GroupId, "public_id", publicID)

	return connect.NewResponse(&pb.UpdatePublicIdResponse{
		Message:  "Group ID updated successfully",
		PublicId: publicID,
	}), nil
}

// AddMember adds someone to the group on their behalf, with the default PIN.
func (s *GroupService) AddMember(ctx context.Context, req *connect.Request[pb.AddMemberRequest]) (*connect.Response[pb.AddMemberResponse], error) {
	if err := authorizeGroup(ctx, req.Msg.GroupId); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}

	member, err := s.authenticator.Register(ctx, req.Msg.GroupId, name, models.DefaultPIN)
	if err != nil {
		return nil, registerError(err)
	}

	slog.Info("Member added", "group_id", req.Msg.GroupId, "member_id", member.ID, "added_by", middleware.GetMemberID(ctx))

	return connect.NewResponse(&pb.AddMemberResponse{Member: toProtoMember(member)}), nil
}

// GetBalances computes each member's net balance from the group's receipts.
func (s *GroupService) GetBalances(ctx context.Context, req *connect.Request[pb.GetBalancesRequest]) (*connect.Response[pb.GetBalancesResponse], error) {
	group, receipts, err := s.snapshot(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	balances := calculator.GetBalances(group.Members, receipts)

	out := make(map[string]string, len(balances))
	for id, amount := range balances {
		out[id] = formatAmount(amount)
	}

	slog.Info("GetBalances successful",
		"group_id", group.ID,
		"receipts_count", len(receipts),
		"members_count", len(group.Members),
	)

	return connect.NewResponse(&pb.GetBalancesResponse{Balances: out}), nil
}

// GetSettlements computes the suggested payments that settle the group.
func (s *GroupService) GetSettlements(ctx context.Context, req *connect.Request[pb.GetSettlementsRequest]) (*connect.Response[pb.GetSettlementsResponse], error) {
	group, receipts, err := s.snapshot(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	settlements := calculator.GetSettlements(group.Members, receipts)

	out := make([]*pb.Settlement, len(settlements))
	for i, st := range settlements {
		out[i] = &pb.Settlement{
			FromId:   st.FromID,
			FromName: st.FromName,
			ToId:     st.ToID,
			ToName:   st.ToName,
			Amount:   formatAmount(st.Amount),
		}
	}

	slog.Info("GetSettlements successful",
		"group_id", group.ID,
		"receipts_count", len(receipts),
		"settlements_count", len(out),
	)

	return connect.NewResponse(&pb.GetSettlementsResponse{Settlements: out}), nil
}

// snapshot loads the roster and receipts the calculator works on.
func (s *GroupService) snapshot(ctx context.Context, groupID string) (*models.Group, []*models.Receipt, error) {
	if err := authorizeGroup(ctx, groupID); err != nil {
		return nil, nil, err
	}

	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		slog.Error("Failed to load group", "group_id", groupID, "error", err)
		return nil, nil, storageError(err)
	}

	receipts, err := s.store.ListReceiptsByGroup(ctx, groupID)
	if err != nil {
		slog.Error("Failed to list receipts", "group_id", groupID, "error", err)
		return nil, nil, storageError(err)
	}

	return group, receipts, nil
}
