package httpserver

import (
	"context"

	accountingHTTP "egy-discovery/internal/accounting/delivery/http"
	accountingRepo "egy-discovery/internal/accounting/repository/memory"
	accountingUC "egy-discovery/internal/accounting/usecase"
	analysisHTTP "egy-discovery/internal/analysis/delivery/http"
	analysisRepo "egy-discovery/internal/analysis/repository/memory"
	analysisUC "egy-discovery/internal/analysis/usecase"
	marketingHTTP "egy-discovery/internal/marketing/delivery/http"
	marketingRepo "egy-discovery/internal/marketing/repository/memory"
	marketingUC "egy-discovery/internal/marketing/usecase"

	"github.com/gin-gonic/gin"
)

// setupRecordDomains wires the in-memory record stores.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.seq)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) setupRecordDomains(ctx context.Context, api *gin.RouterGroup) error {
	// Accounting: /api/accounting/transactions
	accUC := accountingUC.New(accountingRepo.New(srv.seq), srv.l)
	accountingHTTP.RegisterRoutes(api, accountingHTTP.New(srv.l, accUC))

	// Marketing: /api/marketing/campaigns, /api/marketing/metrics
	mkUC := marketingUC.New(marketingRepo.New(srv.seq), srv.l)
	marketingHTTP.RegisterRoutes(api, marketingHTTP.New(srv.l, mkUC))

	// Analysis: /api/analysis/insights, /api/analysis/plan
	anUC := analysisUC.New(analysisRepo.New(srv.seq), srv.l)
	analysisHTTP.RegisterRoutes(api, analysisHTTP.New(srv.l, anUC))

	srv.l.Infof(ctx, "Record domains registered")
	return nil
}
