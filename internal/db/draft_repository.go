package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/eduardo/landingkit/internal/domain"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DraftRepository implements domain.DraftStorePort on a Firestore collection
type DraftRepository struct {
	client     *firestore.Client
	collection string
	now        func() time.Time
}

func NewDraftRepository(client *firestore.Client, collection string) *DraftRepository {
	return &DraftRepository{client: client, collection: collection, now: time.Now}
}

func (r *DraftRepository) Get(ctx context.Context, id string) (*domain.CampaignDraft, error) {
	doc, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%s: %w", id, domain.ErrDraftNotFound)
		}
		return nil, fmt.Errorf("failed to get draft %s: %w", id, err)
	}
	var d domain.CampaignDraft
	if err := doc.DataTo(&d); err != nil {
		return nil, fmt.Errorf("failed to decode draft %s: %w", id, err)
	}
	d.ID = doc.Ref.ID
	return &d, nil
}

// List returns the most recently updated drafts first
func (r *DraftRepository) List(ctx context.Context, limit int) ([]domain.DraftSummary, error) {
	query := r.client.Collection(r.collection).OrderBy("updated_at", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	iter := query.Documents(ctx)
	defer iter.Stop()

	var results []domain.DraftSummary
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list drafts: %w", err)
		}
		var d domain.CampaignDraft
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to decode draft %s: %w", doc.Ref.ID, err)
		}
		results = append(results, domain.DraftSummary{
			ID:           doc.Ref.ID,
			CampaignName: d.CampaignName,
			UpdatedAt:    d.UpdatedAt,
		})
	}
	return results, nil
}

// Save creates the draft when it has no id, otherwise replaces it
func (r *DraftRepository) Save(ctx context.Context, d *domain.CampaignDraft) (string, error) {
	now := r.now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now

	if d.ID == "" {
		ref, _, err := r.client.Collection(r.collection).Add(ctx, d)
		if err != nil {
			return "", fmt.Errorf("failed to create draft: %w", err)
		}
		d.ID = ref.ID
		return ref.ID, nil
	}

	if _, err := r.client.Collection(r.collection).Doc(d.ID).Set(ctx, d); err != nil {
		return "", fmt.Errorf("failed to save draft %s: %w", d.ID, err)
	}
	return d.ID, nil
}
