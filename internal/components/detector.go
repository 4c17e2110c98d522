package components

import (
	"interact3d/internal/engine"
	"interact3d/internal/interaction"

	"go.uber.org/zap"
)

// InteractionDetector attaches the interaction pipeline to the player object.
// Start resolves the prompt label and the spatial query; every Update runs
// one detector tick.
type InteractionDetector struct {
	engine.BaseComponent

	Config interaction.Config
	// Prompt points at an object carrying a UIText.
	Prompt engine.GameObjectRef
	// Query overrides the scene's world as the source of targets.
	Query    interaction.SpatialQuery
	Recorder interaction.Recorder
	Logger   *zap.SugaredLogger

	detector *interaction.Detector
}

func NewInteractionDetector(cfg interaction.Config) *InteractionDetector {
	return &InteractionDetector{Config: cfg}
}

func (d *InteractionDetector) Start() {
	log := d.Logger
	if log == nil {
		log = zap.S()
	}
	g := d.GetGameObject()

	var binding interaction.PromptBinding
	if label := d.Prompt.Get(g.Scene); label != nil {
		if text := engine.GetComponent[*UIText](label); text != nil {
			binding = text
		}
	}

	query := d.Query
	if query == nil && g.Scene != nil {
		query, _ = g.Scene.World.(interaction.SpatialQuery)
	}
	if query == nil {
		log.Errorf("InteractionDetector: %s has no spatial query, nothing will be selected", g.Name)
	}

	d.detector = interaction.NewDetector(d.Config, interaction.Options{
		Actor:    g,
		Query:    query,
		Prompt:   binding,
		Recorder: d.Recorder,
		Logger:   log,
	})
}

func (d *InteractionDetector) Update(deltaTime float32) {
	if d.detector == nil {
		return
	}
	d.detector.Tick(deltaTime)
}

// Detector is the running pipeline, nil before Start.
func (d *InteractionDetector) Detector() *interaction.Detector {
	return d.detector
}

// Press raises the interaction trigger. Presses before Start are dropped.
func (d *InteractionDetector) Press() {
	if d.detector != nil {
		d.detector.Trigger().Set()
	}
}
