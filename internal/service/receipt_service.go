package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/potluck/internal/calculator"
	"github.com/mmynk/potluck/internal/middleware"
	"github.com/mmynk/potluck/internal/models"
	"github.com/mmynk/potluck/internal/storage"
	pb "github.com/mmynk/potluck/pkg/proto"
	"github.com/mmynk/potluck/pkg/proto/protoconnect"
)

// ReceiptService implements the ReceiptService: recording and removing expenses.
type ReceiptService struct {
	protoconnect.UnimplementedReceiptServiceHandler
	store storage.Store
}

var _ protoconnect.ReceiptServiceHandler = (*ReceiptService)(nil)

// NewReceiptService creates a new ReceiptService with the given storage backend.
func NewReceiptService(store storage.Store) *ReceiptService {
	return &ReceiptService{store: store}
}

// CreateReceipt records an expense and returns each beneficiary's share.
func (s *ReceiptService) CreateReceipt(ctx context.Context, req *connect.Request[pb.CreateReceiptRequest]) (*connect.Response[pb.CreateReceiptResponse], error) {
	slog.Info("CreateReceipt request received",
		"group_id", req.Msg.GroupId,
		"payer_id", req.Msg.PayerId,
		"total", req.Msg.Total,
		"splits_count", len(req.Msg.Splits),
	)

	if err := authorizeGroup(ctx, req.Msg.GroupId); err != nil {
		return nil, err
	}

	total, err := parseAmount(strings.TrimSpace(req.Msg.Total))
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	roster, err := s.roster(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}
	if !roster[req.Msg.PayerId] {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("payer %q is not a member of this group", req.Msg.PayerId))
	}

	splits := make([]models.Split, 0, len(req.Msg.Splits))
	for _, in := range req.Msg.Splits {
		if in == nil {
			continue
		}
		if !roster[in.MemberId] {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("member %q is not a member of this group", in.MemberId))
		}
		weight := models.DefaultWeight
		if in.Weight != nil {
			weight = *in.Weight
		}
		if weight < 0 {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("weight for member %q cannot be negative", in.MemberId))
		}
		splits = append(splits, models.Split{MemberID: in.MemberId, Weight: weight})
	}

	receipt := &models.Receipt{
		GroupID: req.Msg.GroupId,
		PayerID: req.Msg.PayerId,
		Total:   total,
		Note:    strings.TrimSpace(req.Msg.Note),
		Splits:  splits,
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateReceipt(ctx, receipt); err != nil {
		slog.Error("CreateReceipt failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, storageError(err)
	}

	shares := calculator.CalculateShares(receipt.Total, receipt.Splits, roster)
	out := make(map[string]string, len(shares))
	for id, share := range shares {
		out[id] = formatAmount(share)
	}

	slog.Info("Receipt created", "receipt_id", receipt.ID, "group_id", receipt.GroupID)

	return connect.NewResponse(&pb.CreateReceiptResponse{
		Receipt: toProtoReceipt(receipt),
		Shares:  out,
	}), nil
}

// ListReceipts returns the group's receipts, newest first.
func (s *ReceiptService) ListReceipts(ctx context.Context, req *connect.Request[pb.ListReceiptsRequest]) (*connect.Response[pb.ListReceiptsResponse], error) {
	if err := authorizeGroup(ctx, req.Msg.GroupId); err != nil {
		return nil, err
	}

	receipts, err := s.store.ListReceiptsByGroup(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("ListReceipts failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, storageError(err)
	}

	out := make([]*pb.Receipt, len(receipts))
	for i, r := range receipts {
		out[i] = toProtoReceipt(r)
	}

	return connect.NewResponse(&pb.ListReceiptsResponse{Receipts: out}), nil
}

// DeleteReceipt removes a receipt from the caller's group.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, req *connect.Request[pb.DeleteReceiptRequest]) (*connect.Response[pb.DeleteReceiptResponse], error) {
	if middleware.GetMemberID(ctx) == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}
	if req.Msg.ReceiptId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("receipt_id required"))
	}

	// A receipt outside the caller's group reads as not found.
	receipt, err := s.store.GetReceipt(ctx, req.Msg.ReceiptId)
	if err != nil {
		return nil, storageError(err)
	}
	if receipt.GroupID != middleware.GetGroupID(ctx) {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("%w: receipt %s", storage.ErrNotFound, req.Msg.ReceiptId))
	}

	if err := s.store.DeleteReceipt(ctx, receipt.ID); err != nil {
		slog.Error("DeleteReceipt failed", "receipt_id", receipt.ID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Receipt deleted", "receipt_id", receipt.ID, "group_id", receipt.GroupID)

	return connect.NewResponse(&pb.DeleteReceiptResponse{}), nil
}

// MarkPaid records a suggested payment as a receipt paid by From for To alone,
// which cancels that much of the debt between them.
func (s *ReceiptService) MarkPaid(ctx context.Context, req *connect.Request[pb.MarkPaidRequest]) (*connect.Response[pb.MarkPaidResponse], error) {
	if err := authorizeGroup(ctx, req.Msg.GroupId); err != nil {
		return nil, err
	}

	if req.Msg.FromId == req.Msg.ToId {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("cannot pay yourself"))
	}

	amount, err := parseAmount(strings.TrimSpace(req.Msg.Amount))
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if !amount.IsPositive() {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount must be positive"))
	}

	roster, err := s.roster(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}
	for _, id := range []string{req.Msg.FromId, req.Msg.ToId} {
		if !roster[id] {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("member %q is not a member of this group", id))
		}
	}

	receipt := &models.Receipt{
		GroupID: req.Msg.GroupId,
		PayerID: req.Msg.FromId,
		Total:   amount,
		Note:    models.SettlementNote,
		Splits:  []models.Split{{MemberID: req.Msg.ToId, Weight: models.DefaultWeight}},
	}
	if err := s.store.CreateReceipt(ctx, receipt); err != nil {
		slog.Error("MarkPaid failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Settlement recorded",
		"receipt_id", receipt.ID,
		"group_id", receipt.GroupID,
		"from", req.Msg.FromId,
		"to", req.Msg.ToId,
		"amount", formatAmount(amount),
	)

	return connect.NewResponse(&pb.MarkPaidResponse{Receipt: toProtoReceipt(receipt)}), nil
}

func (s *ReceiptService) roster(ctx context.Context, groupID string) (map[string]bool, error) {
	members, err := s.store.ListMembers(ctx, groupID)
	if err != nil {
		slog.Error("Failed to list members", "group_id", groupID, "error", err)
		return nil, storageError(err)
	}
	roster := make(map[string]bool, len(members))
	for _, m := range members {
		roster[m.ID] = true
	}
	return roster, nil
}
