package geometry

//go:generate mockgen -package=mocks -destination=mocks/mock_configurator.go github.com/KirkDiggler/dicetray/internal/geometry Configurator

import "github.com/KirkDiggler/dicetray/internal/models"

// Configurator hands out the mesh and numbered faces of each die kind
type Configurator interface {
	// Configure returns the mesh and the faces of the die.
	// The results are shared and must not be modified.
	Configure(kind models.DieKind) (*models.DieMesh, []models.Face)

	// Labels returns where each face label sits in the die's rest frame
	Labels(kind models.DieKind) []models.LabelTransform
}
