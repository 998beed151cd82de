package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"

	"github.com/steve-cse/keralam-mcp-server/api/dam"
	"github.com/steve-cse/keralam-mcp-server/api/feed"
)

func readResource(t *testing.T, contents []mcp.ResourceContents) mcp.TextResourceContents {
	t.Helper()
	if len(contents) != 1 {
		t.Fatalf("len(contents) = %d, want 1", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("contents[0] is %T, want mcp.TextResourceContents", contents[0])
	}
	return tc
}

func TestListDamsResource(t *testing.T) {
	handler := listDamsHandler(newTestMonitor(t))

	var req mcp.ReadResourceRequest
	req.Params.URI = damListURI

	contents, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	tc := readResource(t, contents)
	if tc.URI != damListURI {
		t.Errorf("URI = %q, want %q", tc.URI, damListURI)
	}
	if tc.MIMEType != "application/json" {
		t.Errorf("MIMEType = %q, want application/json", tc.MIMEType)
	}

	var dams []dam.Dam
	if err := json.Unmarshal([]byte(tc.Text), &dams); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	wantIDs := []string{"idukki", "mullaperiyar"}
	gotIDs := lo.Map(dams, func(d dam.Dam, _ int) string { return d.ID })
	if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
		t.Errorf("dam IDs mismatch (-want +got):\n%s", diff)
	}
}

func TestGetDamResource(t *testing.T) {
	handler := getDamHandler(newTestMonitor(t))

	var req mcp.ReadResourceRequest
	req.Params.URI = "dam://idukki"

	contents, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	tc := readResource(t, contents)
	if tc.URI != "dam://idukki" {
		t.Errorf("URI = %q, want dam://idukki", tc.URI)
	}

	var d dam.Dam
	if err := json.Unmarshal([]byte(tc.Text), &d); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if d.ID != "idukki" || d.OfficialName != "Idukki Arch Dam" {
		t.Errorf("unexpected dam: %+v", d)
	}
}

func TestGetDamResourceUnknownID(t *testing.T) {
	handler := getDamHandler(newTestMonitor(t))

	var req mcp.ReadResourceRequest
	req.Params.URI = "dam://atlantis"

	_, err := handler(context.Background(), req)
	if !failure.Is(err, feed.ErrDamNotFound) {
		t.Errorf("handler error = %v, want code %v", err, feed.ErrDamNotFound)
	}
}
