package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Client wraps the Firebase app and its Firestore client
type Client struct {
	App       *firebase.App
	Firestore *firestore.Client
}

// ClientConfig selects the Firebase project. An empty CredentialsFile uses
// Application Default Credentials (or the emulator when
// FIRESTORE_EMULATOR_HOST is set).
type ClientConfig struct {
	ProjectID       string
	CredentialsFile string
	StorageBucket   string
}

// InitFirestore initializes the Firebase app and the Firestore client
func InitFirestore(ctx context.Context, cfg ClientConfig) (*Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	conf := &firebase.Config{ProjectID: cfg.ProjectID, StorageBucket: cfg.StorageBucket}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firestore: %w", err)
	}

	return &Client{App: app, Firestore: client}, nil
}

// Close closes the Firestore client
func (c *Client) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
