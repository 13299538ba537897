package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/quarterdesk/phonesim-go/internal/domain/logistics"
)

type logisticsContext struct {
	catalog *logistics.Catalog
	rec     *logistics.Recommendation
	err     error
}

func (lc *logisticsContext) reset() {
	lc.catalog = nil
	lc.rec = nil
	lc.err = nil
}

func (lc *logisticsContext) theStandardRouteCatalog() error {
	lc.catalog = logistics.DefaultCatalog()
	return nil
}

func (lc *logisticsContext) iRequestARecommendation(from, to string, weightKg, volumeM3, budget, deadlineDays float64) error {
	if lc.catalog == nil {
		return fmt.Errorf("no catalog configured")
	}
	lc.rec, lc.err = logistics.Recommendations(lc.catalog, from, to, weightKg, volumeM3, budget, deadlineDays)
	return lc.err
}

func (lc *logisticsContext) theRecommendedMethodIs(name string) error {
	if lc.rec == nil {
		return fmt.Errorf("no recommendation recorded")
	}
	if lc.rec.Best.Method.Name != name {
		return fmt.Errorf("expected method %q, got %q", name, lc.rec.Best.Method.Name)
	}
	return nil
}

func (lc *logisticsContext) aMethodIsStillRecommended() error {
	if lc.rec == nil {
		return fmt.Errorf("no recommendation recorded")
	}
	if lc.rec.Best.Method.Name == "" {
		return fmt.Errorf("no method recommended")
	}
	return nil
}

func (lc *logisticsContext) theRecommendationCarriesWarnings(count int) error {
	if lc.rec == nil {
		return fmt.Errorf("no recommendation recorded")
	}
	if len(lc.rec.Warnings) != count {
		return fmt.Errorf("expected %d warnings, got %d: %v", count, len(lc.rec.Warnings), lc.rec.Warnings)
	}
	return nil
}

func (lc *logisticsContext) aWarningMentions(fragment string) error {
	if lc.rec == nil {
		return fmt.Errorf("no recommendation recorded")
	}
	for _, warning := range lc.rec.Warnings {
		if strings.Contains(warning, fragment) {
			return nil
		}
	}
	return fmt.Errorf("no warning mentions %q in %v", fragment, lc.rec.Warnings)
}

// InitializeLogisticsScenario registers shipping recommendation steps with godog
func InitializeLogisticsScenario(ctx *godog.ScenarioContext) {
	lc := &logisticsContext{}

	ctx.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		lc.reset()
		return ctx, nil
	})

	ctx.Step(`^the standard route catalog$`, lc.theStandardRouteCatalog)
	ctx.Step(`^I request a recommendation from "([^"]*)" to "([^"]*)" for ([0-9.]+) kg and ([0-9.]+) m3 with budget ([0-9.]+) and deadline ([0-9.]+) days$`,
		lc.iRequestARecommendation)
	ctx.Step(`^the recommended method is "([^"]*)"$`, lc.theRecommendedMethodIs)
	ctx.Step(`^a method is still recommended$`, lc.aMethodIsStillRecommended)
	ctx.Step(`^the recommendation carries (\d+) warnings?$`, lc.theRecommendationCarriesWarnings)
	ctx.Step(`^a warning mentions "([^"]*)"$`, lc.aWarningMentions)
}
