// ABOUTME: Qdrant-backed vector store client with blocking-acknowledgment writes
// ABOUTME: Wraps upsert, retrieve, delete, and similarity search over one collection
package vecstore

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"

	"github.com/harper/recall/internal/models"
)

// Config holds the collection settings the client operates against.
// Dimension must match the embedding model's output size; the collection
// is created with cosine distance.
type Config struct {
	Collection string
	Dimension  int
}

// pointsAPI is the subset of the Qdrant client the store uses.
// Narrowed for substitution with fakes in tests.
type pointsAPI interface {
	CollectionExists(ctx context.Context, collectionName string) (bool, error)
	CreateCollection(ctx context.Context, req *qdrant.CreateCollection) error
	Upsert(ctx context.Context, req *qdrant.UpsertPoints) (*qdrant.UpdateResult, error)
	Get(ctx context.Context, req *qdrant.GetPoints) ([]*qdrant.RetrievedPoint, error)
	Delete(ctx context.Context, req *qdrant.DeletePoints) (*qdrant.UpdateResult, error)
	Query(ctx context.Context, req *qdrant.QueryPoints) ([]*qdrant.ScoredPoint, error)
}

// Client manages fact points in a single Qdrant collection. All writes use
// wait-for-completion semantics so a successful call is immediately
// observable by a subsequent read.
type Client struct {
	api    pointsAPI
	cfg    Config
	logger *zap.Logger
}

// NewClient creates a vector store client over an established Qdrant
// connection. An optional zap logger may be supplied; it defaults to a no-op.
func NewClient(api *qdrant.Client, cfg Config, loggers ...*zap.Logger) (*Client, error) {
	return newClient(api, cfg, loggers...)
}

func newClient(api pointsAPI, cfg Config, loggers ...*zap.Logger) (*Client, error) {
	if cfg.Collection == "" {
		return nil, fmt.Errorf("collection name is required")
	}
	if cfg.Dimension <= 0 {
		return nil, fmt.Errorf("vector dimension must be positive, got %d", cfg.Dimension)
	}

	logger := zap.NewNop()
	if len(loggers) > 0 && loggers[0] != nil {
		logger = loggers[0]
	}

	return &Client{api: api, cfg: cfg, logger: logger}, nil
}

// Connect dials Qdrant and returns a client bound to the configured
// collection. apiKey may be empty for unauthenticated local instances.
func Connect(host string, port int, apiKey string, cfg Config, loggers ...*zap.Logger) (*Client, error) {
	conn, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
	})
	if err != nil {
		return nil, &StoreError{Op: "connect", Collection: cfg.Collection, Err: err}
	}
	return NewClient(conn, cfg, loggers...)
}

// EnsureCollection creates the collection with the configured dimension and
// cosine distance if it does not exist yet.
func (c *Client) EnsureCollection(ctx context.Context) error {
	exists, err := c.api.CollectionExists(ctx, c.cfg.Collection)
	if err != nil {
		return &StoreError{Op: "collection check", Collection: c.cfg.Collection, Err: err}
	}
	if exists {
		return nil
	}

	c.logger.Info("creating collection",
		zap.String("collection", c.cfg.Collection),
		zap.Int("dimension", c.cfg.Dimension))

	err = c.api.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: c.cfg.Collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(c.cfg.Dimension),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return &StoreError{Op: "create collection", Collection: c.cfg.Collection, Err: err}
	}
	return nil
}

// Upsert inserts or replaces the point for the fact, blocking until the
// write is acknowledged. A vector whose length does not match the
// collection dimension fails outright; it is never truncated or padded.
func (c *Client) Upsert(ctx context.Context, fact models.Fact, vector []float32) error {
	if len(vector) != c.cfg.Dimension {
		return &StoreError{
			Op:         "upsert",
			Collection: c.cfg.Collection,
			Err:        fmt.Errorf("vector dimension %d does not match collection dimension %d", len(vector), c.cfg.Dimension),
		}
	}

	payload := map[string]any{"text": fact.Text}

	_, err := c.api.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: c.cfg.Collection,
		Wait:           qdrant.PtrOf(true),
		Points: []*qdrant.PointStruct{
			{
				Id:      pointID(fact.ID),
				Vectors: qdrant.NewVectors(vector...),
				Payload: qdrant.NewValueMap(payload),
			},
		},
	})
	if err != nil {
		return &StoreError{Op: "upsert", Collection: c.cfg.Collection, Err: err}
	}

	c.logger.Debug("upserted point",
		zap.String("collection", c.cfg.Collection),
		zap.String("id", fact.ID))
	return nil
}

// Retrieve returns the subset of requested ids that exist, each with its
// stored vector and payload. Absent ids are simply omitted; an empty
// result is a valid state, not an error.
func (c *Client) Retrieve(ctx context.Context, ids []string) ([]models.StoredFact, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	pointIDs := make([]*qdrant.PointId, len(ids))
	for i, id := range ids {
		pointIDs[i] = pointID(id)
	}

	points, err := c.api.Get(ctx, &qdrant.GetPoints{
		CollectionName: c.cfg.Collection,
		Ids:            pointIDs,
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, &StoreError{Op: "retrieve", Collection: c.cfg.Collection, Err: err}
	}

	facts := make([]models.StoredFact, 0, len(points))
	for _, p := range points {
		facts = append(facts, models.StoredFact{
			ID:      idString(p.GetId()),
			Vector:  p.GetVectors().GetVector().GetData(),
			Payload: payloadFromValues(p.GetPayload()),
		})
	}
	return facts, nil
}

// Delete removes the given ids, blocking until acknowledged.
// Deleting an absent id is a no-op.
func (c *Client) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	pointIDs := make([]*qdrant.PointId, len(ids))
	for i, id := range ids {
		pointIDs[i] = pointID(id)
	}

	_, err := c.api.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: c.cfg.Collection,
		Wait:           qdrant.PtrOf(true),
		Points:         qdrant.NewPointsSelector(pointIDs...),
	})
	if err != nil {
		return &StoreError{Op: "delete", Collection: c.cfg.Collection, Err: err}
	}

	c.logger.Debug("deleted points",
		zap.String("collection", c.cfg.Collection),
		zap.Strings("ids", ids))
	return nil
}

// Search returns up to limit nearest points to the query vector, ordered by
// descending score. Equal scores break by ascending id so results are
// deterministic.
func (c *Client) Search(ctx context.Context, vector []float32, limit int) ([]models.SearchResult, error) {
	if limit <= 0 {
		return nil, &StoreError{
			Op:         "search",
			Collection: c.cfg.Collection,
			Err:        fmt.Errorf("limit must be positive, got %d", limit),
		}
	}

	scored, err := c.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: c.cfg.Collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, &StoreError{Op: "search", Collection: c.cfg.Collection, Err: err}
	}

	results := make([]models.SearchResult, 0, len(scored))
	for _, p := range scored {
		results = append(results, models.SearchResult{
			StoredFact: models.StoredFact{
				ID:      idString(p.GetId()),
				Payload: payloadFromValues(p.GetPayload()),
			},
			Score: p.GetScore(),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].ID < results[j].ID
	})

	return results, nil
}

// pointID maps a fact id onto a Qdrant point id. Numeric strings become
// numeric ids; anything else is used as a UUID string id.
func pointID(id string) *qdrant.PointId {
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		return qdrant.NewIDNum(n)
	}
	return qdrant.NewID(id)
}

// idString is the inverse of pointID for ids read back from the store.
func idString(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	if u := id.GetUuid(); u != "" {
		return u
	}
	return strconv.FormatUint(id.GetNum(), 10)
}

// payloadFromValues converts a Qdrant payload into the static Payload
// structure. The text field is lifted out; every other string entry lands
// in the open Extra map.
func payloadFromValues(values map[string]*qdrant.Value) models.Payload {
	payload := models.Payload{}
	for key, value := range values {
		if key == "text" {
			payload.Text = value.GetStringValue()
			continue
		}
		if s := value.GetStringValue(); s != "" {
			if payload.Extra == nil {
				payload.Extra = make(map[string]string)
			}
			payload.Extra[key] = s
		}
	}
	return payload
}
