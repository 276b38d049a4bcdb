// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

/*
Package services provides suture.Service wrappers for Skillmatch components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and identifies itself through fmt.Stringer for supervisor logs.

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the blocking ListenAndServe into Serve

Catalog (CatalogService):
  - Loads the catalog on start when nothing is served yet
  - Polls the source version every reload interval
  - Rebuilds the recommender on change and swaps it into the holder
  - Keeps the previous recommender when a rebuild fails
  - Reload is also called by POST /api/v1/catalog/reload

# Usage

	holder := recommender.NewHolder(nil)
	catalogSvc := services.NewCatalogService(src, holder, services.CatalogServiceConfig{
	    ReloadInterval: cfg.Catalog.ReloadInterval,
	    Recommend:      cfg.Recommend.EngineConfig(),
	}, logger)
	tree.AddDataService(catalogSvc)
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))
*/
package services
