package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrLastLabel is returned when removing the only label of a category.
var ErrLastLabel = errors.New("category must keep at least one label")

// PipelineConfig lists the status labels currently offered per category.
// Applications may still carry labels that were removed here.
type PipelineConfig struct {
	Active   []string `json:"active"`
	Inactive []string `json:"inactive"`
}

// DefaultPipelineConfig returns the built-in label set.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Active:   []string{LabelApplied, LabelScreening, LabelInterviewing, LabelOffer},
		Inactive: []string{LabelRejected, LabelWithdrawn, LabelNoResponse, LabelGhosted},
	}
}

// Labels returns the labels of a category.
func (c PipelineConfig) Labels(cat StatusCategory) []string {
	if cat == StatusCategoryInactive {
		return c.Inactive
	}
	return c.Active
}

// Contains reports whether status.Label is configured under status.Category.
func (c PipelineConfig) Contains(status ApplicationStatus) bool {
	if !status.Category.IsValid() {
		return false
	}
	return indexFold(c.Labels(status.Category), status.Label) >= 0
}

// CategoryOf returns the category a label belongs to.
func (c PipelineConfig) CategoryOf(label string) (StatusCategory, bool) {
	if indexFold(c.Active, label) >= 0 {
		return StatusCategoryActive, true
	}
	if indexFold(c.Inactive, label) >= 0 {
		return StatusCategoryInactive, true
	}
	return "", false
}

// AddLabel appends a label to a category. Duplicates (case-insensitive) are
// ignored and reported with changed=false.
func (c *PipelineConfig) AddLabel(cat StatusCategory, label string) (bool, error) {
	if !cat.IsValid() {
		return false, NewValidationError("category", "must be active or inactive")
	}
	label = NormalizeLabel(label)
	if label == "" {
		return false, NewValidationError("label", "required")
	}
	labels := c.ptr(cat)
	if indexFold(*labels, label) >= 0 {
		return false, nil
	}
	if other, ok := c.CategoryOf(label); ok && other != cat {
		return false, NewValidationError("label", fmt.Sprintf("already used in %s", other))
	}
	*labels = append(slices.Clone(*labels), label)
	return true, nil
}

// RemoveLabel removes a label from a category.
func (c *PipelineConfig) RemoveLabel(cat StatusCategory, label string) error {
	if !cat.IsValid() {
		return NewValidationError("category", "must be active or inactive")
	}
	labels := c.ptr(cat)
	i := indexFold(*labels, NormalizeLabel(label))
	if i < 0 {
		return fmt.Errorf("label %q: %w", label, ErrNotFound)
	}
	if len(*labels) == 1 {
		return fmt.Errorf("%s: %w", cat, ErrLastLabel)
	}
	*labels = slices.Delete(slices.Clone(*labels), i, i+1)
	return nil
}

// Validate checks the one-label-per-category invariant.
func (c PipelineConfig) Validate() error {
	var errs fieldErrors
	if len(c.Active) == 0 {
		errs.add("active", "at least one label required")
	}
	if len(c.Inactive) == 0 {
		errs.add("inactive", "at least one label required")
	}
	return errs.err()
}

func (c PipelineConfig) Clone() PipelineConfig {
	return PipelineConfig{Active: slices.Clone(c.Active), Inactive: slices.Clone(c.Inactive)}
}

func (c *PipelineConfig) ptr(cat StatusCategory) *[]string {
	if cat == StatusCategoryInactive {
		return &c.Inactive
	}
	return &c.Active
}

func indexFold(labels []string, label string) int {
	label = strings.TrimSpace(label)
	for i, l := range labels {
		if strings.EqualFold(l, label) {
			return i
		}
	}
	return -1
}
