package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/potluck/internal/auth"
	"github.com/mmynk/potluck/internal/middleware"
	"github.com/mmynk/potluck/internal/storage/sqlite"
	pb "github.com/mmynk/potluck/pkg/proto"
	"github.com/mmynk/potluck/pkg/proto/protoconnect"
)

type testClients struct {
	groups   protoconnect.GroupServiceClient
	receipts protoconnect.ReceiptServiceClient
	http     *http.Client
	baseURL  string
}

// setupTestServer serves both services behind the session interceptor,
// backed by a throwaway SQLite database.
func setupTestServer(t *testing.T) testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager, PublicGroupProcedures...),
	)

	groupSvc := NewGroupService(store, auth.NewPINAuthenticator(store), jwtManager)
	receiptSvc := NewReceiptService(store)

	groupPath, groupHandler := protoconnect.NewGroupServiceHandler(groupSvc, interceptors)
	receiptPath, receiptHandler := protoconnect.NewReceiptServiceHandler(receiptSvc, interceptors)

	mux := http.NewServeMux()
	mux.Handle(groupPath, groupHandler)
	mux.Handle(receiptPath, receiptHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return testClients{
		groups:   protoconnect.NewGroupServiceClient(server.Client(), server.URL),
		receipts: protoconnect.NewReceiptServiceClient(server.Client(), server.URL),
		http:     server.Client(),
		baseURL:  server.URL,
	}
}

func withToken[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+token)
	return req
}

// testGroup is a group created by "Alice" with "Bob" and "Carol" added.
type testGroup struct {
	id       string
	publicID string
	token    string
	alice    string
	bob      string
	carol    string
}

func createTestGroup(t *testing.T, c testClients) testGroup {
	t.Helper()
	ctx := context.Background()

	created, err := c.groups.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{
		Name:        "Lisbon Trip",
		Pin:         "1234",
		CreatorName: "Alice",
	}))
	require.NoError(t, err)

	g := testGroup{
		id:       created.Msg.Group.Id,
		publicID: created.Msg.Group.PublicId,
		token:    created.Msg.Token,
		alice:    created.Msg.MemberId,
	}

	for _, name := range []string{"Bob", "Carol"} {
		added, err := c.groups.AddMember(ctx, withToken(g.token, &pb.AddMemberRequest{GroupId: g.id, Name: name}))
		require.NoError(t, err)
		if name == "Bob" {
			g.bob = added.Msg.Member.Id
		} else {
			g.carol = added.Msg.Member.Id
		}
	}

	return g
}

func weight(w float64) *float64 {
	return &w
}

func splitsFor(ids ...string) []*pb.SplitInput {
	splits := make([]*pb.SplitInput, len(ids))
	for i, id := range ids {
		splits[i] = &pb.SplitInput{MemberId: id}
	}
	return splits
}

func requireCode(t *testing.T, err error, code connect.Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, connect.CodeOf(err), err.Error())
}

func settlementKeys(settlements []*pb.Settlement) []string {
	keys := make([]string, len(settlements))
	for i, s := range settlements {
		keys[i] = s.FromName + "->" + s.ToName + ":" + s.Amount
	}
	slices.Sort(keys)
	return keys
}
