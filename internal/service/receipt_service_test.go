package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/mmynk/potluck/pkg/proto"
)

func TestCreateReceipt(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	g := createTestGroup(t, c)

	resp, err := c.receipts.CreateReceipt(ctx, withToken(g.token, &pb.CreateReceiptRequest{
		GroupId: g.id,
		PayerId: g.bob,
		Total:   "100",
		Note:    "Dinner",
		Splits: []*pb.SplitInput{
			{MemberId: g.alice, Weight: weight(2)},
			{MemberId: g.bob},
			{MemberId: g.carol, Weight: weight(1)},
		},
	}))
	require.NoError(t, err)

	receipt := resp.Msg.Receipt
	assert.NotEmpty(t, receipt.Id)
	assert.Equal(t, g.bob, receipt.PayerId)
	assert.Equal(t, "100.00", receipt.Total)
	assert.Equal(t, "Dinner", receipt.Note)
	require.Len(t, receipt.Splits, 3)
	assert.Equal(t, 1.0, receipt.Splits[1].Weight)

	assert.Equal(t, map[string]string{
		g.alice: "50.00",
		g.bob:   "25.00",
		g.carol: "25.00",
	}, resp.Msg.Shares)

	t.Run("validation", func(t *testing.T) {
		stranger := createTestGroup(t, c)

		tests := []struct {
			name string
			req  *pb.CreateReceiptRequest
		}{
			{"unparseable total", &pb.CreateReceiptRequest{GroupId: g.id, PayerId: g.alice, Total: "ten"}},
			{"negative total", &pb.CreateReceiptRequest{GroupId: g.id, PayerId: g.alice, Total: "-5"}},
			{"sub-cent total", &pb.CreateReceiptRequest{GroupId: g.id, PayerId: g.alice, Total: "1.005"}},
			{"payer outside group", &pb.CreateReceiptRequest{GroupId: g.id, PayerId: stranger.alice, Total: "5"}},
			{"split outside group", &pb.CreateReceiptRequest{
				GroupId: g.id,
				PayerId: g.alice,
				Total:   "5",
				Splits:  splitsFor(g.alice, stranger.bob),
			}},
			{"negative weight", &pb.CreateReceiptRequest{
				GroupId: g.id,
				PayerId: g.alice,
				Total:   "5",
				Splits:  []*pb.SplitInput{{MemberId: g.bob, Weight: weight(-1)}},
			}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := c.receipts.CreateReceipt(ctx, withToken(g.token, tt.req))
				requireCode(t, err, connect.CodeInvalidArgument)
			})
		}
	})

	t.Run("requires a session", func(t *testing.T) {
		_, err := c.receipts.CreateReceipt(ctx, connect.NewRequest(&pb.CreateReceiptRequest{
			GroupId: g.id,
			PayerId: g.alice,
			Total:   "5",
		}))
		requireCode(t, err, connect.CodeUnauthenticated)
	})
}

func TestCreateReceipt_ZeroWeightsOnlyCreditPayer(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	g := createTestGroup(t, c)

	resp, err := c.receipts.CreateReceipt(ctx, withToken(g.token, &pb.CreateReceiptRequest{
		GroupId: g.id,
		PayerId: g.alice,
		Total:   "50",
		Splits: []*pb.SplitInput{
			{MemberId: g.bob, Weight: weight(0)},
			{MemberId: g.carol, Weight: weight(0)},
		},
	}))
	require.NoError(t, err)
	assert.Empty(t, resp.Msg.Shares)

	balances, err := c.groups.GetBalances(ctx, withToken(g.token, &pb.GetBalancesRequest{GroupId: g.id}))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		g.alice: "50.00",
		g.bob:   "0.00",
		g.carol: "0.00",
	}, balances.Msg.Balances)
}

func TestListReceipts(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	g := createTestGroup(t, c)

	for _, note := range []string{"Groceries", "Taxi", "Museum"} {
		_, err := c.receipts.CreateReceipt(ctx, withToken(g.token, &pb.CreateReceiptRequest{
			GroupId: g.id,
			PayerId: g.alice,
			Total:   "12.50",
			Note:    note,
			Splits:  splitsFor(g.alice, g.bob),
		}))
		require.NoError(t, err)
	}

	resp, err := c.receipts.ListReceipts(ctx, withToken(g.token, &pb.ListReceiptsRequest{GroupId: g.id}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Receipts, 3)

	notes := make([]string, len(resp.Msg.Receipts))
	for i, r := range resp.Msg.Receipts {
		notes[i] = r.Note
		assert.Equal(t, "12.50", r.Total)
		assert.Len(t, r.Splits, 2)
	}
	assert.Equal(t, []string{"Museum", "Taxi", "Groceries"}, notes)

	t.Run("other groups are off limits", func(t *testing.T) {
		other := createTestGroup(t, c)
		_, err := c.receipts.ListReceipts(ctx, withToken(other.token, &pb.ListReceiptsRequest{GroupId: g.id}))
		requireCode(t, err, connect.CodePermissionDenied)
	})
}

func TestDeleteReceipt(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	g := createTestGroup(t, c)

	created, err := c.receipts.CreateReceipt(ctx, withToken(g.token, &pb.CreateReceiptRequest{
		GroupId: g.id,
		PayerId: g.alice,
		Total:   "30",
		Splits:  splitsFor(g.alice, g.bob, g.carol),
	}))
	require.NoError(t, err)
	receiptID := created.Msg.Receipt.Id

	t.Run("requires a session", func(t *testing.T) {
		_, err := c.receipts.DeleteReceipt(ctx, connect.NewRequest(&pb.DeleteReceiptRequest{ReceiptId: receiptID}))
		requireCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("other groups see not found", func(t *testing.T) {
		other := createTestGroup(t, c)
		_, err := c.receipts.DeleteReceipt(ctx, withToken(other.token, &pb.DeleteReceiptRequest{ReceiptId: receiptID}))
		requireCode(t, err, connect.CodeNotFound)

		_, err = c.receipts.DeleteReceipt(ctx, withToken(other.token, &pb.DeleteReceiptRequest{ReceiptId: "no-such-receipt"}))
		requireCode(t, err, connect.CodeNotFound)

		listed, err := c.receipts.ListReceipts(ctx, withToken(g.token, &pb.ListReceiptsRequest{GroupId: g.id}))
		require.NoError(t, err)
		require.Len(t, listed.Msg.Receipts, 1)
	})

	_, err = c.receipts.DeleteReceipt(ctx, withToken(g.token, &pb.DeleteReceiptRequest{ReceiptId: receiptID}))
	require.NoError(t, err)

	balances, err := c.groups.GetBalances(ctx, withToken(g.token, &pb.GetBalancesRequest{GroupId: g.id}))
	require.NoError(t, err)
	assert.Equal(t, "0.00", balances.Msg.Balances[g.alice])

	_, err = c.receipts.DeleteReceipt(ctx, withToken(g.token, &pb.DeleteReceiptRequest{ReceiptId: receiptID}))
	requireCode(t, err, connect.CodeNotFound)
}

func TestMarkPaid(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	g := createTestGroup(t, c)

	_, err := c.receipts.CreateReceipt(ctx, withToken(g.token, &pb.CreateReceiptRequest{
		GroupId: g.id,
		PayerId: g.alice,
		Total:   "90",
		Splits:  splitsFor(g.alice, g.bob, g.carol),
	}))
	require.NoError(t, err)

	settlements, err := c.groups.GetSettlements(ctx, withToken(g.token, &pb.GetSettlementsRequest{GroupId: g.id}))
	require.NoError(t, err)
	require.Len(t, settlements.Msg.Settlements, 2)

	for _, s := range settlements.Msg.Settlements {
		resp, err := c.receipts.MarkPaid(ctx, withToken(g.token, &pb.MarkPaidRequest{
			GroupId: g.id,
			FromId:  s.FromId,
			ToId:    s.ToId,
			Amount:  s.Amount,
		}))
		require.NoError(t, err)
		assert.Equal(t, "Settlement", resp.Msg.Receipt.Note)
		assert.Equal(t, s.FromId, resp.Msg.Receipt.PayerId)
		require.Len(t, resp.Msg.Receipt.Splits, 1)
		assert.Equal(t, s.ToId, resp.Msg.Receipt.Splits[0].MemberId)
	}

	balances, err := c.groups.GetBalances(ctx, withToken(g.token, &pb.GetBalancesRequest{GroupId: g.id}))
	require.NoError(t, err)
	for id, b := range balances.Msg.Balances {
		assert.Equal(t, "0.00", b, id)
	}

	after, err := c.groups.GetSettlements(ctx, withToken(g.token, &pb.GetSettlementsRequest{GroupId: g.id}))
	require.NoError(t, err)
	assert.Empty(t, after.Msg.Settlements)

	t.Run("validation", func(t *testing.T) {
		stranger := createTestGroup(t, c)

		tests := []struct {
			name string
			req  *pb.MarkPaidRequest
		}{
			{"same member", &pb.MarkPaidRequest{GroupId: g.id, FromId: g.bob, ToId: g.bob, Amount: "5"}},
			{"zero amount", &pb.MarkPaidRequest{GroupId: g.id, FromId: g.bob, ToId: g.alice, Amount: "0"}},
			{"bad amount", &pb.MarkPaidRequest{GroupId: g.id, FromId: g.bob, ToId: g.alice, Amount: "5.001"}},
			{"payee outside group", &pb.MarkPaidRequest{GroupId: g.id, FromId: g.bob, ToId: stranger.alice, Amount: "5"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := c.receipts.MarkPaid(ctx, withToken(g.token, tt.req))
				requireCode(t, err, connect.CodeInvalidArgument)
			})
		}
	})
}
