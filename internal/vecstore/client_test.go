// ABOUTME: Tests for the Qdrant-backed vector store client
// ABOUTME: Uses a fake points API to verify wait semantics, dimension checks, and ordering
package vecstore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/qdrant/go-client/qdrant"

	"github.com/harper/recall/internal/models"
)

// fakeAPI implements pointsAPI with overridable behavior per call
type fakeAPI struct {
	collectionExists bool
	existsErr        error

	createdCollection *qdrant.CreateCollection
	createErr         error

	upsertReq *qdrant.UpsertPoints
	upsertErr error

	getReq    *qdrant.GetPoints
	getPoints []*qdrant.RetrievedPoint
	getErr    error

	deleteReq *qdrant.DeletePoints
	deleteErr error

	queryReq    *qdrant.QueryPoints
	queryPoints []*qdrant.ScoredPoint
	queryErr    error
}

func (f *fakeAPI) CollectionExists(ctx context.Context, name string) (bool, error) {
	return f.collectionExists, f.existsErr
}

func (f *fakeAPI) CreateCollection(ctx context.Context, req *qdrant.CreateCollection) error {
	f.createdCollection = req
	return f.createErr
}

func (f *fakeAPI) Upsert(ctx context.Context, req *qdrant.UpsertPoints) (*qdrant.UpdateResult, error) {
	f.upsertReq = req
	return &qdrant.UpdateResult{}, f.upsertErr
}

func (f *fakeAPI) Get(ctx context.Context, req *qdrant.GetPoints) ([]*qdrant.RetrievedPoint, error) {
	f.getReq = req
	return f.getPoints, f.getErr
}

func (f *fakeAPI) Delete(ctx context.Context, req *qdrant.DeletePoints) (*qdrant.UpdateResult, error) {
	f.deleteReq = req
	return &qdrant.UpdateResult{}, f.deleteErr
}

func (f *fakeAPI) Query(ctx context.Context, req *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error) {
	f.queryReq = req
	return f.queryPoints, f.queryErr
}

func newTestClient(t *testing.T, api pointsAPI) *Client {
	t.Helper()
	client, err := newClient(api, Config{Collection: "facts", Dimension: 3})
	if err != nil {
		t.Fatalf("newClient() error: %v", err)
	}
	return client
}

func TestNewClient_Validation(t *testing.T) {
	if _, err := newClient(&fakeAPI{}, Config{Collection: "", Dimension: 3}); err == nil {
		t.Error("expected error for empty collection name")
	}
	if _, err := newClient(&fakeAPI{}, Config{Collection: "facts", Dimension: 0}); err == nil {
		t.Error("expected error for zero dimension")
	}
}

func TestEnsureCollection_CreatesWhenMissing(t *testing.T) {
	api := &fakeAPI{collectionExists: false}
	client := newTestClient(t, api)

	if err := client.EnsureCollection(context.Background()); err != nil {
		t.Fatalf("EnsureCollection() error: %v", err)
	}

	if api.createdCollection == nil {
		t.Fatal("expected CreateCollection to be called")
	}
	if api.createdCollection.CollectionName != "facts" {
		t.Errorf("collection name = %q, want facts", api.createdCollection.CollectionName)
	}

	params := api.createdCollection.VectorsConfig.GetParams()
	if params.GetSize() != 3 {
		t.Errorf("vector size = %d, want 3", params.GetSize())
	}
	if params.GetDistance() != qdrant.Distance_Cosine {
		t.Errorf("distance = %v, want cosine", params.GetDistance())
	}
}

func TestEnsureCollection_SkipsWhenPresent(t *testing.T) {
	api := &fakeAPI{collectionExists: true}
	client := newTestClient(t, api)

	if err := client.EnsureCollection(context.Background()); err != nil {
		t.Fatalf("EnsureCollection() error: %v", err)
	}
	if api.createdCollection != nil {
		t.Error("CreateCollection should not be called for an existing collection")
	}
}

func TestUpsert_WaitsForAcknowledgment(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api)

	fact := models.Fact{ID: "2", Text: "The human body contains 206 bones."}
	if err := client.Upsert(context.Background(), fact, []float32{0.1, 0.2, 0.3}); err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}

	if api.upsertReq == nil {
		t.Fatal("expected Upsert to be called")
	}
	if api.upsertReq.Wait == nil || !*api.upsertReq.Wait {
		t.Error("Upsert must request blocking acknowledgment (wait=true)")
	}
	if len(api.upsertReq.Points) != 1 {
		t.Fatalf("got %d points, want 1", len(api.upsertReq.Points))
	}

	point := api.upsertReq.Points[0]
	if point.Id.GetNum() != 2 {
		t.Errorf("point id = %v, want numeric 2", point.Id)
	}
	if got := point.Payload["text"].GetStringValue(); got != fact.Text {
		t.Errorf("payload text = %q, want %q", got, fact.Text)
	}
}

func TestUpsert_DimensionMismatch(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api)

	err := client.Upsert(context.Background(), models.Fact{ID: "1", Text: "x"}, []float32{0.1, 0.2})

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("Upsert() error = %v, want StoreError", err)
	}
	if api.upsertReq != nil {
		t.Error("a mismatched vector must fail before any store call")
	}
}

func TestRetrieve_OmitsMissingIDs(t *testing.T) {
	api := &fakeAPI{
		getPoints: []*qdrant.RetrievedPoint{
			{
				Id:      qdrant.NewIDNum(1),
				Payload: qdrant.NewValueMap(map[string]any{"text": "The Earth orbits the Sun."}),
			},
		},
	}
	client := newTestClient(t, api)

	facts, err := client.Retrieve(context.Background(), []string{"1", "999"})
	if err != nil {
		t.Fatalf("Retrieve() error: %v", err)
	}

	if len(facts) != 1 {
		t.Fatalf("got %d facts, want 1 (missing ids omitted)", len(facts))
	}
	if facts[0].ID != "1" {
		t.Errorf("fact id = %q, want 1", facts[0].ID)
	}
	if facts[0].Payload.Text != "The Earth orbits the Sun." {
		t.Errorf("payload text = %q", facts[0].Payload.Text)
	}
	if len(api.getReq.Ids) != 2 {
		t.Errorf("requested %d ids, want 2", len(api.getReq.Ids))
	}
}

func TestRetrieve_EmptyInput(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api)

	facts, err := client.Retrieve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Retrieve(nil) error: %v", err)
	}
	if len(facts) != 0 {
		t.Errorf("got %d facts, want 0", len(facts))
	}
	if api.getReq != nil {
		t.Error("no store call expected for empty id list")
	}
}

func TestDelete_WaitsForAcknowledgment(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api)

	if err := client.Delete(context.Background(), []string{"1", "2"}); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	if api.deleteReq == nil {
		t.Fatal("expected Delete to be called")
	}
	if api.deleteReq.Wait == nil || !*api.deleteReq.Wait {
		t.Error("Delete must request blocking acknowledgment (wait=true)")
	}
}

func TestDelete_EmptyInputIsNoOp(t *testing.T) {
	api := &fakeAPI{}
	client := newTestClient(t, api)

	if err := client.Delete(context.Background(), nil); err != nil {
		t.Fatalf("Delete(nil) error: %v", err)
	}
	if api.deleteReq != nil {
		t.Error("no store call expected for empty id list")
	}
}

func TestSearch_OrderingAndTieBreak(t *testing.T) {
	api := &fakeAPI{
		queryPoints: []*qdrant.ScoredPoint{
			{Id: qdrant.NewIDNum(3), Score: 0.8, Payload: qdrant.NewValueMap(map[string]any{"text": "c"})},
			{Id: qdrant.NewIDNum(1), Score: 0.9, Payload: qdrant.NewValueMap(map[string]any{"text": "a"})},
			{Id: qdrant.NewIDNum(2), Score: 0.9, Payload: qdrant.NewValueMap(map[string]any{"text": "b"})},
		},
	}
	client := newTestClient(t, api)

	results, err := client.Search(context.Background(), []float32{0.1, 0.2, 0.3}, 3)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	wantOrder := []string{"1", "2", "3"}
	for i, want := range wantOrder {
		if results[i].ID != want {
			t.Errorf("results[%d].ID = %q, want %q (score desc, ties by id)", i, results[i].ID, want)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not in non-increasing score order at %d", i)
		}
	}

	if api.queryReq.Limit == nil || *api.queryReq.Limit != 3 {
		t.Error("query limit should be forwarded to the store")
	}
}

func TestSearch_EmptyCollection(t *testing.T) {
	api := &fakeAPI{queryPoints: nil}
	client := newTestClient(t, api)

	results, err := client.Search(context.Background(), []float32{0.1, 0.2, 0.3}, 5)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0 for empty collection", len(results))
	}
}

func TestSearch_InvalidLimit(t *testing.T) {
	client := newTestClient(t, &fakeAPI{})

	_, err := client.Search(context.Background(), []float32{0.1, 0.2, 0.3}, 0)

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("Search() error = %v, want StoreError", err)
	}
}

func TestStoreErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	api := &fakeAPI{upsertErr: cause}
	client := newTestClient(t, api)

	err := client.Upsert(context.Background(), models.Fact{ID: "1", Text: "x"}, []float32{0, 0, 0})

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("error = %v, want StoreError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("StoreError should wrap the underlying cause")
	}
	if storeErr.Collection != "facts" {
		t.Errorf("StoreError.Collection = %q, want facts", storeErr.Collection)
	}
}

func TestPointIDRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		numeric bool
	}{
		{name: "numeric id", id: "42", numeric: true},
		{name: "uuid id", id: "6ba7b810-9dad-11d1-80b4-00c04fd430c8", numeric: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pid := pointID(tt.id)
			if tt.numeric && pid.GetUuid() != "" {
				t.Errorf("pointID(%q) produced uuid id, want numeric", tt.id)
			}
			if !tt.numeric && pid.GetUuid() == "" {
				t.Errorf("pointID(%q) produced numeric id, want uuid", tt.id)
			}
			if got := idString(pid); got != tt.id {
				t.Errorf("idString(pointID(%q)) = %q", tt.id, got)
			}
		})
	}
}
