package geometry

import "github.com/KirkDiggler/dicetray/internal/models"

// Labels orients each face label along its normal and pushes it out from the centre
func Labels(kind models.DieKind, faces []models.Face) []models.LabelTransform {
	offset := LabelOffset
	if kind == models.D4 {
		offset = TetraLabelOffset
	}

	labels := make([]models.LabelTransform, len(faces))
	for i, f := range faces {
		labels[i] = models.LabelTransform{
			Value:    f.Value,
			Position: f.Normal.Mul(offset),
			Rotation: RotationBetween(LabelAxis, f.Normal),
		}
	}
	return labels
}
