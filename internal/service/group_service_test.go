package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/mmynk/potluck/pkg/proto"
	"github.com/mmynk/potluck/pkg/proto/protoconnect"
)

func TestCreateGroup(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	resp, err := c.groups.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{
		Name: "Roommates",
		Pin:  "4321",
	}))
	require.NoError(t, err)

	group := resp.Msg.Group
	require.NotNil(t, group)
	assert.NotEmpty(t, group.Id)
	assert.Equal(t, group.Id, group.PublicId)
	assert.Equal(t, "Roommates", group.Name)
	assert.WithinDuration(t, time.Now(), group.CreatedAt.AsTime(), time.Minute)
	require.Len(t, group.Members, 1)
	assert.Equal(t, "Admin", group.Members[0].Name)
	assert.True(t, group.Members[0].IsAdmin)
	assert.Equal(t, group.Members[0].Id, resp.Msg.MemberId)
	assert.True(t, resp.Msg.IsAdmin)
	assert.NotEmpty(t, resp.Msg.Token)

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name string
			req  *pb.CreateGroupRequest
		}{
			{"missing name", &pb.CreateGroupRequest{Pin: "1234"}},
			{"blank name", &pb.CreateGroupRequest{Name: "   ", Pin: "1234"}},
			{"short PIN", &pb.CreateGroupRequest{Name: "Trip", Pin: "12"}},
			{"non-digit PIN", &pb.CreateGroupRequest{Name: "Trip", Pin: "12ab"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := c.groups.CreateGroup(ctx, connect.NewRequest(tt.req))
				requireCode(t, err, connect.CodeInvalidArgument)
			})
		}
	})
}

func TestJoinGroup(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	g := createTestGroup(t, c)

	t.Run("new member registers", func(t *testing.T) {
		resp, err := c.groups.JoinGroup(ctx, connect.NewRequest(&pb.JoinGroupRequest{
			PublicId: g.publicID,
			Name:     "Dave",
			Pin:      "5555",
		}))
		require.NoError(t, err)
		assert.Equal(t, "Joined group successfully", resp.Msg.Message)
		assert.False(t, resp.Msg.IsAdmin)
		assert.NotEmpty(t, resp.Msg.Token)
		assert.Len(t, resp.Msg.Group.Members, 4)
	})

	t.Run("existing member logs in case-insensitively", func(t *testing.T) {
		resp, err := c.groups.JoinGroup(ctx, connect.NewRequest(&pb.JoinGroupRequest{
			PublicId: g.publicID,
			Name:     "alice",
			Pin:      "1234",
		}))
		require.NoError(t, err)
		assert.Equal(t, "Logged in successfully", resp.Msg.Message)
		assert.Equal(t, g.alice, resp.Msg.MemberId)
		assert.True(t, resp.Msg.IsAdmin)
	})

	t.Run("added member logs in with the default PIN", func(t *testing.T) {
		resp, err := c.groups.JoinGroup(ctx, connect.NewRequest(&pb.JoinGroupRequest{
			PublicId: g.publicID,
			Name:     "Bob",
			Pin:      "0000",
		}))
		require.NoError(t, err)
		assert.Equal(t, g.bob, resp.Msg.MemberId)
	})

	t.Run("wrong PIN", func(t *testing.T) {
		_, err := c.groups.JoinGroup(ctx, connect.NewRequest(&pb.JoinGroupRequest{
			PublicId: g.publicID,
			Name:     "Alice",
			Pin:      "9999",
		}))
		requireCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("missing PIN", func(t *testing.T) {
		_, err := c.groups.JoinGroup(ctx, connect.NewRequest(&pb.JoinGroupRequest{
			PublicId: g.publicID,
			Name:     "Eve",
		}))
		requireCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("weak PIN for a new member", func(t *testing.T) {
		_, err := c.groups.JoinGroup(ctx, connect.NewRequest(&pb.JoinGroupRequest{
			PublicId: g.publicID,
			Name:     "Eve",
			Pin:      "12",
		}))
		requireCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := c.groups.JoinGroup(ctx, connect.NewRequest(&pb.JoinGroupRequest{
			PublicId: "no-such-group",
			Name:     "Alice",
			Pin:      "1234",
		}))
		requireCode(t, err, connect.CodeNotFound)
	})
}

func TestGetGroup(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	g := createTestGroup(t, c)

	resp, err := c.groups.GetGroup(ctx, withToken(g.token, &pb.GetGroupRequest{GroupId: g.id}))
	require.NoError(t, err)
	assert.Equal(t, "Lisbon Trip", resp.Msg.Group.Name)

	names := make([]string, len(resp.Msg.Group.Members))
	for i, m := range resp.Msg.Group.Members {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names)

	public, err := c.groups.GetGroupByPublicId(ctx, connect.NewRequest(&pb.GetGroupByPublicIdRequest{PublicId: g.publicID}))
	require.NoError(t, err)
	assert.Equal(t, g.id, public.Msg.Group.Id)

	t.Run("requires a session", func(t *testing.T) {
		_, err := c.groups.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{GroupId: g.id}))
		requireCode(t, err, connect.CodeUnauthenticated)
	})

	t.Run("other groups are off limits", func(t *testing.T) {
		other := createTestGroup(t, c)
		_, err := c.groups.GetGroup(ctx, withToken(g.token, &pb.GetGroupRequest{GroupId: other.id}))
		requireCode(t, err, connect.CodePermissionDenied)
	})
}

func TestUpdatePublicId(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	g := createTestGroup(t, c)

	resp, err := c.groups.UpdatePublicId(ctx, withToken(g.token, &pb.UpdatePublicIdRequest{
		GroupId:  g.id,
		PublicId: "lisbon-2026",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Group ID updated successfully", resp.Msg.Message)

	found, err := c.groups.GetGroupByPublicId(ctx, connect.NewRequest(&pb.GetGroupByPublicIdRequest{PublicId: "lisbon-2026"}))
	require.NoError(t, err)
	assert.Equal(t, g.id, found.Msg.Group.Id)

	t.Run("taken", func(t *testing.T) {
		other := createTestGroup(t, c)
		_, err := c.groups.UpdatePublicId(ctx, withToken(other.token, &pb.UpdatePublicIdRequest{
			GroupId:  other.id,
			PublicId: "lisbon-2026",
		}))
		requireCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("admins only", func(t *testing.T) {
		bob, err := c.groups.JoinGroup(ctx, connect.NewRequest(&pb.JoinGroupRequest{
			PublicId: "lisbon-2026",
			Name:     "Bob",
			Pin:      "0000",
		}))
		require.NoError(t, err)

		_, err = c.groups.UpdatePublicId(ctx, withToken(bob.Msg.Token, &pb.UpdatePublicIdRequest{
			GroupId:  g.id,
			PublicId: "bobs-trip",
		}))
		requireCode(t, err, connect.CodePermissionDenied)
	})
}

func TestAddMember(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	g := createTestGroup(t, c)

	t.Run("duplicate name", func(t *testing.T) {
		_, err := c.groups.AddMember(ctx, withToken(g.token, &pb.AddMemberRequest{GroupId: g.id, Name: "BOB"}))
		requireCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := c.groups.AddMember(ctx, withToken(g.token, &pb.AddMemberRequest{GroupId: g.id, Name: " "}))
		requireCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestGetBalances(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	g := createTestGroup(t, c)

	empty, err := c.groups.GetBalances(ctx, withToken(g.token, &pb.GetBalancesRequest{GroupId: g.id}))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{g.alice: "0.00", g.bob: "0.00", g.carol: "0.00"}, empty.Msg.Balances)

	_, err = c.receipts.CreateReceipt(ctx, withToken(g.token, &pb.CreateReceiptRequest{
		GroupId: g.id,
		PayerId: g.alice,
		Total:   "10.00",
		Splits:  splitsFor(g.alice, g.bob, g.carol),
	}))
	require.NoError(t, err)

	resp, err := c.groups.GetBalances(ctx, withToken(g.token, &pb.GetBalancesRequest{GroupId: g.id}))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		g.alice: "6.67",
		g.bob:   "-3.33",
		g.carol: "-3.33",
	}, resp.Msg.Balances)
}

func TestGetSettlements_JSON(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	g := createTestGroup(t, c)

	_, err := c.receipts.CreateReceipt(ctx, withToken(g.token, &pb.CreateReceiptRequest{
		GroupId: g.id,
		PayerId: g.alice,
		Total:   "30",
		Splits:  splitsFor(g.alice, g.bob, g.carol),
	}))
	require.NoError(t, err)

	t.Run("protojson client", func(t *testing.T) {
		groups := protoconnect.NewGroupServiceClient(c.http, c.baseURL, connect.WithProtoJSON())
		resp, err := groups.GetSettlements(ctx, withToken(g.token, &pb.GetSettlementsRequest{GroupId: g.id}))
		require.NoError(t, err)
		assert.Equal(t, []string{"Bob->Alice:10.00", "Carol->Alice:10.00"}, settlementKeys(resp.Msg.Settlements))
	})

	t.Run("amounts travel as strings", func(t *testing.T) {
		body := strings.NewReader(`{"groupId":"` + g.id + `"}`)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+protoconnect.GroupServiceGetBalancesProcedure, body)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+g.token)

		httpResp, err := c.http.Do(req)
		require.NoError(t, err)
		defer httpResp.Body.Close()
		require.Equal(t, http.StatusOK, httpResp.StatusCode)

		var decoded struct {
			Balances map[string]string `json:"balances"`
		}
		require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&decoded))
		assert.Equal(t, "20.00", decoded.Balances[g.alice])
		assert.Equal(t, "-10.00", decoded.Balances[g.bob])
	})
}

func TestGetSettlements(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	g := createTestGroup(t, c)

	t.Run("nothing to settle", func(t *testing.T) {
		resp, err := c.groups.GetSettlements(ctx, withToken(g.token, &pb.GetSettlementsRequest{GroupId: g.id}))
		require.NoError(t, err)
		assert.Empty(t, resp.Msg.Settlements)
	})

	// Alice pays 100 for everyone, Bob pays 60 for himself and Carol.
	// Alice +66.67, Bob -3.33, Carol -63.33
	_, err := c.receipts.CreateReceipt(ctx, withToken(g.token, &pb.CreateReceiptRequest{
		GroupId: g.id,
		PayerId: g.alice,
		Total:   "100",
		Splits:  splitsFor(g.alice, g.bob, g.carol),
	}))
	require.NoError(t, err)
	_, err = c.receipts.CreateReceipt(ctx, withToken(g.token, &pb.CreateReceiptRequest{
		GroupId: g.id,
		PayerId: g.bob,
		Total:   "60",
		Splits:  splitsFor(g.bob, g.carol),
	}))
	require.NoError(t, err)

	resp, err := c.groups.GetSettlements(ctx, withToken(g.token, &pb.GetSettlementsRequest{GroupId: g.id}))
	require.NoError(t, err)

	require.Len(t, resp.Msg.Settlements, 2)
	first := resp.Msg.Settlements[0]
	assert.Equal(t, g.carol, first.FromId)
	assert.Equal(t, g.alice, first.ToId)
	assert.Equal(t, []string{
		"Bob->Alice:3.33",
		"Carol->Alice:63.33",
	}, settlementKeys(resp.Msg.Settlements))
}
