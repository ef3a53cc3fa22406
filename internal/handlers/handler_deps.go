package handlers

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/nickthelegend/podio-ai/internal/config"
	"github.com/nickthelegend/podio-ai/internal/deck"
	"github.com/nickthelegend/podio-ai/internal/export"
	"github.com/nickthelegend/podio-ai/internal/jobs"
	"github.com/nickthelegend/podio-ai/internal/models"
	"github.com/nickthelegend/podio-ai/internal/store"
	"github.com/nickthelegend/podio-ai/internal/tts"
	"github.com/nickthelegend/podio-ai/internal/worker"
)

// Generator defines the content generation operations handlers expect.
// It is an interface so tests can stub the model out.
type Generator interface {
	GenerateSlides(ctx context.Context, topic, style string, slideCount int) ([]models.Slide, error)
	GeneratePodcastScript(ctx context.Context, topic string, minutes int) ([]models.DialogueLine, error)
	RefineScript(ctx context.Context, lines []models.DialogueLine, instruction string) ([]models.DialogueLine, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Cfg        *config.Config
	Logger     *logrus.Logger
	Generator  Generator
	TTS        *tts.Client
	Deck       *deck.Deck
	Store      *store.Store
	Registry   *jobs.Registry
	Dispatcher *worker.Dispatcher
	Profile    export.EncoderProfile
	BatchSize  int
}

// NewApplicationHandler creates an ApplicationHandler with the given dependencies.
func NewApplicationHandler(cfg *config.Config, logger *logrus.Logger, gen Generator,
	ttsClient *tts.Client, d *deck.Deck, st *store.Store, reg *jobs.Registry,
	disp *worker.Dispatcher, profile export.EncoderProfile, batchSize int) *ApplicationHandler {

	return &ApplicationHandler{
		Cfg:        cfg,
		Logger:     logger,
		Generator:  gen,
		TTS:        ttsClient,
		Deck:       d,
		Store:      st,
		Registry:   reg,
		Dispatcher: disp,
		Profile:    profile,
		BatchSize:  batchSize,
	}
}
