package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"omni-autoreply/configs"
	httpAdapter "omni-autoreply/internal/adapters/input/http"
	lineAdapter "omni-autoreply/internal/adapters/output/line"
	"omni-autoreply/internal/adapters/output/memory"
	metaAdapter "omni-autoreply/internal/adapters/output/meta"
	"omni-autoreply/internal/adapters/output/postgres"
	"omni-autoreply/internal/application"
	"omni-autoreply/internal/domain"
	"omni-autoreply/internal/ports/output"
	"omni-autoreply/pkg/database_driver/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultRuleTTL = 60 * time.Second

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	dbConGorm, err := gorm.ConnectToPostgreSQL(
		configs.GetViper().Postgres.Host,
		configs.GetViper().Postgres.Port,
		configs.GetViper().Postgres.Username,
		configs.GetViper().Postgres.Password,
		configs.GetViper().Postgres.DbName,
		configs.GetViper().Postgres.SSLMode,
	)
	if err != nil {
		return err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapter (repository) behind the rule snapshot cache
	postgresRepo := postgres.NewAutoReplyRepository(dbConGorm.Postgres)
	ruleTTL := defaultRuleTTL
	if configs.GetViper().Cache.RuleTTL > 0 {
		ruleTTL = time.Duration(configs.GetViper().Cache.RuleTTL) * time.Second
	}
	cachedRepo := memory.NewRuleSnapshotCache(postgresRepo, ruleTTL)

	// Output adapters (message clients), one per channel
	lineClient, err := lineAdapter.NewLineClientAdapter(configs.GetViper().Line.ChannelToken)
	if err != nil {
		logrus.Fatalf("Failed to create LINE client: %v", err)
	}
	metaClient := metaAdapter.NewMetaClientAdapter(
		configs.GetViper().Meta.GraphBaseURL,
		configs.GetViper().Meta.PageAccessToken,
	)
	clients := map[domain.ChannelType]output.MessageClient{
		domain.ChannelTypeLine:      lineClient,
		domain.ChannelTypeFacebook:  metaClient,
		domain.ChannelTypeInstagram: metaClient,
	}

	// Application services (use cases)
	autoReplySrv := application.NewAutoReplyService(cachedRepo, clients)
	adminSrv := application.NewAutoReplyAdminService(cachedRepo)

	// Input adapters (HTTP handlers)
	hdl := httpAdapter.New(adminSrv, dbConGorm.Postgres)
	lineWebhookHdl := httpAdapter.NewLineWebhookHandler(
		autoReplySrv,
		configs.GetViper().Line.ChannelSecret,
		parseOrganizationID(configs.GetViper().Line.OrganizationID, "line"),
	)
	metaWebhookHdl := httpAdapter.NewMetaWebhookHandler(
		autoReplySrv,
		configs.GetViper().Meta.VerifyToken,
		parseOrganizationID(configs.GetViper().Meta.OrganizationID, "meta"),
	)

	app.Get("/health", hdl.HealthCheck)

	magnolia := app.Group("/v1/api")
	{
		magnolia.Post("/auto-reply", hdl.CreateAutoReply)
		magnolia.Put("/auto-reply", hdl.UpdateAutoReply)
		magnolia.Delete("/auto-reply/:id", hdl.DeleteAutoReply)
		magnolia.Get("/auto-reply/:id", hdl.GetAutoReply)
		magnolia.Get("/auto-reply", hdl.GetAutoReply)
	}

	// Webhook endpoints
	webhook := app.Group("/webhook")
	{
		webhook.Post("/line", lineWebhookHdl.HandleWebhook)
		webhook.Get("/meta", metaWebhookHdl.VerifyWebhook)
		webhook.Post("/meta", metaWebhookHdl.HandleWebhook)
	}

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}

// parseOrganizationID - channel webhooks are bound to one organization via
// config; a malformed id is a startup error
func parseOrganizationID(value, channel string) uuid.UUID {
	if value == "" {
		logrus.Warnf("No organization id configured for %s webhook", channel)
		return uuid.Nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		logrus.Fatalf("Invalid organization id for %s webhook: %v", channel, err)
	}
	return id
}
