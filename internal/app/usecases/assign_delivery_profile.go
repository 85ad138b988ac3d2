package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"delivery-profile-assigner/internal/adapters/shopify"
	"delivery-profile-assigner/internal/config"
	"delivery-profile-assigner/internal/domain/model"
	"delivery-profile-assigner/internal/logging"
)

type AssignDeliveryProfileService interface {
	Run(ctx context.Context) (AssignResult, error)
}

// BatchRecorder keeps an audit trail of batches that were committed.
type BatchRecorder interface {
	RecordBatch(ctx context.Context, record model.BatchRecord) error
}

type AssignResult struct {
	Found    int
	Assigned int
	Batches  int
}

type ClientAssign struct {
	cfg       config.AssignConfig
	collector shopify.VariantCollector
	profiles  shopify.DeliveryProfileService
	recorder  BatchRecorder
	logger    logging.LoggerService
	runID     string
}

// NewAssignDeliveryProfile wires the workflow. recorder and logger may be nil.
func NewAssignDeliveryProfile(
	cfg config.AssignConfig,
	collector shopify.VariantCollector,
	profiles shopify.DeliveryProfileService,
	recorder BatchRecorder,
	logger logging.LoggerService,
	runID string,
) AssignDeliveryProfileService {
	return &ClientAssign{
		cfg:       cfg,
		collector: collector,
		profiles:  profiles,
		recorder:  recorder,
		logger:    logger,
		runID:     runID,
	}
}

// Run collects matching variant ids and associates them with the profile
// batch by batch. The first failing batch stops the run; earlier batches
// stay applied.
func (c *ClientAssign) Run(ctx context.Context) (AssignResult, error) {
	if c.cfg.BatchSize <= 0 {
		return AssignResult{}, fmt.Errorf("batch size must be positive, got %d", c.cfg.BatchSize)
	}
	if strings.TrimSpace(c.cfg.DeliveryProfileID) == "" {
		return AssignResult{}, errors.New("delivery profile id is required")
	}

	c.log("Collecting variant IDs by metafield")
	variantIDs, err := c.collector.CollectVariantIDsByMetafield(ctx, shopify.MetafieldFilter{
		Namespace: c.cfg.MetafieldNamespace,
		Key:       c.cfg.MetafieldKey,
		Value:     c.cfg.MetafieldValue,
		UseSearch: c.cfg.UseSearchFilter,
	})
	if err != nil {
		return AssignResult{}, fmt.Errorf("collect variants: %w", err)
	}

	result := AssignResult{Found: len(variantIDs)}
	c.log(fmt.Sprintf("Found %d variants to assign", len(variantIDs)))
	if len(variantIDs) == 0 {
		c.log("Nothing to do (no matching products/metafields)")
		return result, nil
	}

	for _, batch := range model.SplitBatches(variantIDs, c.cfg.BatchSize) {
		profile, err := c.profiles.AssociateVariants(ctx, c.cfg.DeliveryProfileID, batch.VariantIDs)
		if err != nil {
			if userErrs, ok := shopify.IsUserErrors(err); ok {
				c.logError(fmt.Sprintf("UserErrors on batch %d", batch.Index), userErrs)
			}
			return result, fmt.Errorf("batch %d: %w", batch.Index, err)
		}
		result.Assigned += len(batch.VariantIDs)
		result.Batches++

		name := profile.Name
		if name == "" {
			name = c.cfg.DeliveryProfileID
		}
		c.log(fmt.Sprintf("Associated %d/%d variants to %s", result.Assigned, result.Found, name))

		c.record(ctx, model.BatchRecord{
			RunID:       c.runID,
			ProfileID:   c.cfg.DeliveryProfileID,
			ProfileName: profile.Name,
			BatchIndex:  batch.Index,
			VariantIDs:  batch.VariantIDs,
		})
	}

	return result, nil
}

func (c *ClientAssign) record(ctx context.Context, record model.BatchRecord) {
	if c.recorder == nil {
		return
	}
	if err := c.recorder.RecordBatch(ctx, record); err != nil && c.logger != nil {
		c.logger.LogWarning(fmt.Sprintf("audit record failed batch=%d: %v", record.BatchIndex, err))
	}
}

func (c *ClientAssign) log(message string) {
	if c.logger != nil {
		c.logger.Log(message)
	}
}

func (c *ClientAssign) logError(message string, err error) {
	if c.logger != nil {
		c.logger.LogDiagnostic(message, err)
	}
}
