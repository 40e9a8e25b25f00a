package classifier

import (
	"context"

	"renthub-backend/internal/domain"
)

// Classifier is the external image classification service. Classify
// returns the model's best-guess free-text label; an empty label means
// the model produced no usable prediction.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (string, error)
}

// CategoryForLabel maps a classifier label to a catalog category. The
// mapping is total: any label outside the known set, including the empty
// label, becomes CategoryOther.
func CategoryForLabel(label string) domain.ItemCategory {
	switch label {
	case "Vehicles":
		return domain.CategoryVehicles
	case "Sport Inventory":
		return domain.CategorySportInventory
	case "Camping":
		return domain.CategoryCamping
	default:
		return domain.CategoryOther
	}
}

// Predict classifies an image and folds every failure mode (no image, a
// transport error, an unknown label) into CategoryOther.
func Predict(ctx context.Context, c Classifier, image []byte) domain.ItemCategory {
	if c == nil || len(image) == 0 {
		return domain.CategoryOther
	}
	label, err := c.Classify(ctx, image)
	if err != nil {
		return domain.CategoryOther
	}
	return CategoryForLabel(label)
}
