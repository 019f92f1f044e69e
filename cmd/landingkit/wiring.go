package main

import (
	"context"
	"fmt"

	"github.com/eduardo/landingkit/internal/application"
	"github.com/eduardo/landingkit/internal/db"
	"github.com/eduardo/landingkit/internal/domain"
	"github.com/eduardo/landingkit/internal/generator"
	"github.com/eduardo/landingkit/internal/infrastructure"
	"github.com/eduardo/landingkit/internal/packager"
	"github.com/eduardo/landingkit/internal/parser"
	"github.com/eduardo/landingkit/internal/sections"
	"github.com/eduardo/landingkit/internal/theme"
)

// remote holds the Firebase-backed adapters of one command invocation
type remote struct {
	client   *db.Client
	drafts   *db.DraftRepository
	archives *db.ArchiveStore
}

func (r *remote) Close() {
	if r != nil && r.client != nil {
		_ = r.client.Close()
	}
}

// openRemote connects to Firestore, and to Storage when withArchives is set
func (o *rootOptions) openRemote(ctx context.Context, fs domain.FileSystemPort, withArchives bool) (*remote, error) {
	client, err := db.InitFirestore(ctx, db.ClientConfig{
		ProjectID:       o.cfg.Firestore.ProjectID,
		CredentialsFile: o.cfg.Firestore.CredentialsFile,
		StorageBucket:   o.cfg.Storage.Bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to firestore: %w", err)
	}
	r := &remote{
		client: client,
		drafts: db.NewDraftRepository(client.Firestore, o.cfg.Firestore.Collection),
	}
	if withArchives {
		r.archives, err = db.NewArchiveStore(ctx, client.App, fs, o.cfg.Storage.Bucket, o.cfg.Storage.Prefix)
		if err != nil {
			r.Close()
			return nil, err
		}
	}
	return r, nil
}

// newBuildService wires the local adapters. r may be nil for file-only builds.
func (o *rootOptions) newBuildService(fs domain.FileSystemPort, r *remote) *application.BuildService {
	registry := sections.NewRegistry()
	gen := generator.New(fs, infrastructure.NewGoTemplateEngine(), registry, generator.Options{
		HostManifest:    o.cfg.Build.HostManifest,
		DependencyAllow: o.cfg.Build.DependencyAllow,
	})
	deps := application.Dependencies{
		FS:        fs,
		Parser:    parser.NewMarkdownParser(fs),
		Themes:    theme.NewAssembler(),
		Sections:  registry,
		Generator: gen,
		Packager:  packager.New(fs),
	}
	if r != nil {
		deps.Store = r.drafts
		if r.archives != nil {
			deps.Archives = r.archives
		}
	}
	return application.NewBuildService(deps, o.cfg.Build)
}
