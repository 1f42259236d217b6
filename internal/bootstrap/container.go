package bootstrap

import (
	"log"
	"os"
	"path/filepath"

	"law-agent-be/internal/config"
	"law-agent-be/internal/controller"
	"law-agent-be/internal/pkg/logger"
	"law-agent-be/internal/repository/contract"
	"law-agent-be/internal/repository/implementation"
	"law-agent-be/internal/repository/memory"
	"law-agent-be/internal/service"
	"law-agent-be/pkg/legal/classifier"
	"law-agent-be/pkg/legal/glossary"
	"law-agent-be/pkg/legal/synthesizer"
	"law-agent-be/pkg/llm"
	"law-agent-be/pkg/llm/grok"
	"law-agent-be/pkg/policy"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController  controller.ISessionController
	QueryController    controller.IQueryController
	GlossaryController controller.IGlossaryController
	SystemController   controller.ISystemController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

// NewContainer wires the full dependency graph. db may be nil: analytics
// then falls back to in-process aggregates. Redis is likewise optional;
// the session store degrades to its local cache when the client is nil
// or unreachable.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. External Clients
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Invalid REDIS_URL, running on in-process sessions only: %v", err)
		} else {
			rdb = redis.NewClient(opts)
		}
	}

	var provider llm.Provider
	grokProvider := grok.New(cfg.Grok.APIKey, cfg.Grok.Model, cfg.Grok.Timeout)
	provider = grokProvider
	if grokProvider.Configured() {
		log.Printf("[INFO] Using LLM Provider: GROK (%s)", cfg.Grok.Model)
	} else {
		log.Printf("[INFO] GROK_API_KEY not set, low-confidence queries use templates only")
	}

	// 4. Domain Components
	policyAdapter := policy.NewAdapter(cfg.Agent.PolicyStep, cfg.Agent.PolicyMinWeight, cfg.Agent.PolicyMaxWeight)
	queryClassifier := classifier.New(cfg.Agent.MinScore)
	legalGlossary := glossary.New()
	responseSynthesizer := synthesizer.New(synthesizer.Config{
		SectionBudget: cfg.Agent.SectionBudget,
		TotalBudget:   cfg.Agent.TotalBudget,
		LowConfidence: cfg.Agent.LowConfidence,
		LLMTimeout:    cfg.Grok.Timeout,
	}, provider, initLLMLogger())

	// 5. Repositories
	sessionStore := implementation.NewSessionStore(rdb, cfg.Agent.SessionTTL, sysLogger)

	var analyticsRepo contract.IAnalyticsRepository
	if db != nil {
		analyticsRepo = implementation.NewAnalyticsRepository(db)
	} else {
		analyticsRepo = memory.NewAnalyticsRepository()
	}

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Agent.FeedbackTopicName, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Agent.FeedbackTopicName, policyAdapter, sysLogger)

	agentService := service.NewAgentService(
		sessionStore,
		analyticsRepo,
		queryClassifier,
		responseSynthesizer,
		legalGlossary,
		policyAdapter,
		publisherService,
		cfg.Agent.MaxGlossaryTerms,
		sysLogger,
	)
	sessionService := service.NewSessionService(sessionStore, sysLogger)
	glossaryService := service.NewGlossaryService(legalGlossary, cfg.Agent.MaxGlossaryTerms)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	systemService := service.NewSystemService(rdb, grokProvider.Configured(), db != nil)

	// 7. Controllers
	return &Container{
		SessionController:  controller.NewSessionController(sessionService),
		QueryController:    controller.NewQueryController(agentService),
		GlossaryController: controller.NewGlossaryController(glossaryService),
		SystemController:   controller.NewSystemController(systemService, analyticsService),
		ConsumerService:    consumerService,
		Logger:             sysLogger,
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_grok.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-GROK] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
