package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"renthub-backend/internal/domain"
)

func TestCategoryForLabel(t *testing.T) {
	t.Run("KnownLabels", func(t *testing.T) {
		assert.Equal(t, domain.CategoryVehicles, CategoryForLabel("Vehicles"))
		assert.Equal(t, domain.CategorySportInventory, CategoryForLabel("Sport Inventory"))
		assert.Equal(t, domain.CategoryCamping, CategoryForLabel("Camping"))
	})

	t.Run("EverythingElseIsOther", func(t *testing.T) {
		assert.Equal(t, domain.CategoryOther, CategoryForLabel(""))
		assert.Equal(t, domain.CategoryOther, CategoryForLabel("Banana"))
		assert.Equal(t, domain.CategoryOther, CategoryForLabel("vehicles")) // labels are case sensitive
	})
}

type staticClassifier struct {
	label string
	err   error
}

func (s staticClassifier) Classify(context.Context, []byte) (string, error) {
	return s.label, s.err
}

func TestPredict(t *testing.T) {
	ctx := context.Background()
	image := []byte{0x01}

	t.Run("MapsLabelToCategory", func(t *testing.T) {
		got := Predict(ctx, staticClassifier{label: "Camping"}, image)
		assert.Equal(t, domain.CategoryCamping, got)
	})

	t.Run("NilClassifierDefaultsToOther", func(t *testing.T) {
		assert.Equal(t, domain.CategoryOther, Predict(ctx, nil, image))
	})

	t.Run("EmptyImageDefaultsToOther", func(t *testing.T) {
		assert.Equal(t, domain.CategoryOther, Predict(ctx, staticClassifier{label: "Vehicles"}, nil))
	})

	t.Run("TransportErrorDefaultsToOther", func(t *testing.T) {
		got := Predict(ctx, staticClassifier{err: errors.New("timeout")}, image)
		assert.Equal(t, domain.CategoryOther, got)
	})
}
