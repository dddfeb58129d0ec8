package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/fairyhunter13/subscription-admin/internal/model"
	"github.com/fairyhunter13/subscription-admin/internal/upstream"
)

// PackageService provides business logic for subscription packages.
type PackageService struct {
	upstream UpstreamInterface
}

// NewPackageService creates a new PackageService.
func NewPackageService(upstream UpstreamInterface) *PackageService {
	return &PackageService{upstream: upstream}
}

// Plans returns every package together with the starter and pro plans.
// A failed fetch yields no packages; Plans never returns an error.
func (s *PackageService) Plans(ctx context.Context) (*model.PlansResponse, error) {
	packages, err := s.upstream.ListPackages(ctx)
	if err != nil {
		degrade("packages", err)
		packages = []model.Package{}
	}

	return &model.PlansResponse{
		Packages: packages,
		Starter:  findPlan(packages, "starter"),
		Pro:      findPlan(packages, "pro"),
	}, nil
}

// Update edits a package. Blank features are dropped. Prices are only kept for
// the pro plan, which must have both.
// Returns ErrPackageNotFound if no package has the given id.
// Returns ErrPriceRequired or ErrInvalidPrice for bad pro plan prices.
func (s *PackageService) Update(ctx context.Context, id string, req *model.UpdatePackageRequest) (*model.Package, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	packages, err := s.upstream.ListPackages(ctx)
	if err != nil {
		return nil, mutationError("load packages", err)
	}
	var existing *model.Package
	for i := range packages {
		if packages[i].ID == id {
			existing = &packages[i]
			break
		}
	}
	if existing == nil {
		return nil, ErrPackageNotFound
	}

	update := &model.UpdatePackageRequest{
		PackageName:      strings.TrimSpace(req.PackageName),
		ShortDescription: strings.TrimSpace(req.ShortDescription),
		Features:         nonBlank(req.Features),
	}
	if isPlan(existing.PackageName, "pro") {
		if req.ActualPrice == nil || req.DiscountedPrice == nil {
			return nil, ErrPriceRequired
		}
		if *req.DiscountedPrice > *req.ActualPrice {
			return nil, ErrInvalidPrice
		}
		update.ActualPrice = req.ActualPrice
		update.DiscountedPrice = req.DiscountedPrice
	}

	if err := s.upstream.UpdatePackage(ctx, id, update); err != nil {
		if upstream.IsStatus(err, http.StatusNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, mutationError("update package", err)
	}

	log.Info().
		Str("package_id", id).
		Str("package", update.PackageName).
		Int("features", len(update.Features)).
		Msg("package updated")

	return &model.Package{
		ID:               id,
		PackageName:      update.PackageName,
		ShortDescription: update.ShortDescription,
		ActualPrice:      update.ActualPrice,
		DiscountedPrice:  update.DiscountedPrice,
		Features:         update.Features,
	}, nil
}

// findPlan returns the first package whose name contains keyword, ignoring case.
func findPlan(packages []model.Package, keyword string) *model.Package {
	for i := range packages {
		if isPlan(packages[i].PackageName, keyword) {
			p := packages[i]
			return &p
		}
	}
	return nil
}

func isPlan(name, keyword string) bool {
	return strings.Contains(strings.ToLower(name), keyword)
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
