package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/potluck/internal/calculator"
	"github.com/mmynk/potluck/internal/middleware"
	"github.com/mmynk/potluck/internal/models"
	"github.com/mmynk/potluck/internal/storage"
	pb "github.com/mmynk/potluck/pkg/proto"
)

// authorizeGroup checks that the caller holds a session for groupID.
func authorizeGroup(ctx context.Context, groupID string) error {
	if middleware.GetMemberID(ctx) == "" {
		return connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}
	if groupID == "" {
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("group_id required"))
	}
	if middleware.GetGroupID(ctx) != groupID {
		return connect.NewError(connect.CodePermissionDenied, fmt.Errorf("you must be a member of this group"))
	}
	return nil
}

// storageError maps storage sentinels onto Connect codes.
func storageError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// parseAmount parses a non-negative currency amount with at most two decimals.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount cannot be negative")
	}
	if amount.Exponent() < -calculator.CurrencyPlaces {
		return decimal.Zero, fmt.Errorf("amount cannot have more than %d decimal places", calculator.CurrencyPlaces)
	}
	return amount, nil
}

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(calculator.CurrencyPlaces)
}

func toProtoMember(m *models.Member) *pb.Member {
	return &pb.Member{
		Id:       m.ID,
		Name:     m.Name,
		IsAdmin:  m.IsAdmin,
		JoinedAt: timestamppb.New(time.Unix(m.JoinedAt, 0)),
	}
}

func toProtoGroup(g *models.Group) *pb.Group {
	members := make([]*pb.Member, len(g.Members))
	for i, m := range g.Members {
		members[i] = toProtoMember(m)
	}
	return &pb.Group{
		Id:        g.ID,
		PublicId:  g.PublicID,
		Name:      g.Name,
		Members:   members,
		CreatedAt: timestamppb.New(time.Unix(g.CreatedAt, 0)),
	}
}

func toProtoReceipt(r *models.Receipt) *pb.Receipt {
	splits := make([]*pb.Split, len(r.Splits))
	for i, s := range r.Splits {
		splits[i] = &pb.Split{MemberId: s.MemberID, Weight: s.Weight}
	}
	return &pb.Receipt{
		Id:        r.ID,
		GroupId:   r.GroupID,
		PayerId:   r.PayerID,
		Total:     formatAmount(r.Total),
		Note:      r.Note,
		Splits:    splits,
		CreatedAt: timestamppb.New(time.Unix(r.CreatedAt, 0)),
	}
}
