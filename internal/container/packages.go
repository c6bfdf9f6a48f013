package container

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/serroba/tinyurl/internal/analytics"
	"github.com/serroba/tinyurl/internal/handlers"
	"github.com/serroba/tinyurl/internal/health"
	"github.com/serroba/tinyurl/internal/messaging"
	"github.com/serroba/tinyurl/internal/middleware"
	"github.com/serroba/tinyurl/internal/ratelimit"
	"github.com/serroba/tinyurl/internal/shortener"
	"github.com/serroba/tinyurl/internal/store"
	"github.com/serroba/tinyurl/internal/user"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const clickConsumerGroup = "tinyurl-analytics"

// LoggerPackage provides the zap logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		opts := do.MustInvoke[*Options](i)

		if opts.LogFormat == "json" {
			return zap.NewProduction()
		}

		return zap.NewDevelopment()
	})
}

// RedisPackage provides the shared Redis client.
func RedisPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*redis.Client, error) {
		opts := do.MustInvoke[*Options](i)

		return redis.NewClient(&redis.Options{Addr: opts.RedisAddr}), nil
	})
}

// MongoPackage provides the Mongo client and the document store over it.
func MongoPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*mongo.Client, error) {
		opts := do.MustInvoke[*Options](i)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return mongo.Connect(ctx, mongooptions.Client().ApplyURI(opts.MongoURI))
	})

	do.Provide(injector, func(i *do.Injector) (user.Store, error) {
		opts := do.MustInvoke[*Options](i)
		client := do.MustInvoke[*mongo.Client](i)

		return store.NewMongoUserStore(client.Database(opts.MongoDB)), nil
	})
}

// MemoryUserStorePackage provides an in-memory document store, for the
// memory backend.
func MemoryUserStorePackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (user.Store, error) {
		return store.NewMemoryUserStore(), nil
	})
}

// MappingStorePackage provides the shortener.Store selected by the
// store option. The Postgres backend gets a Redis read cache in front.
func MappingStorePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (shortener.Store, error) {
		opts := do.MustInvoke[*Options](i)

		switch opts.Store {
		case "memory":
			return store.NewMemoryMappingStore(), nil
		case "redis":
			return store.NewRedisMappingStore(do.MustInvoke[*redis.Client](i)), nil
		case "postgres":
			pool, err := pgxpool.New(context.Background(), opts.PostgresURL)
			if err != nil {
				return nil, err
			}

			pg := store.NewPostgresMappingStore(pool)
			ttl := time.Duration(opts.CacheTTL) * time.Second

			return store.NewCachedMappingStore(pg, do.MustInvoke[*redis.Client](i), ttl), nil
		default:
			return nil, fmt.Errorf("unknown mapping store backend %q", opts.Store)
		}
	})
}

// PublisherPackage provides the stream publisher and the typed click
// publish function.
func PublisherPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		client := do.MustInvoke[*redis.Client](i)

		publisher, err := redisstream.NewPublisher(
			redisstream.PublisherConfig{Client: client},
			watermill.NopLogger{},
		)
		if err != nil {
			return nil, err
		}

		return messaging.NewPublisherGroup(publisher), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[analytics.ClickEvent], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[analytics.ClickEvent](group.Publisher(), analytics.TopicClicks), nil
	})
}

// ShortenerPackage provides the code generator, allocator, and resolver.
func ShortenerPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (shortener.CodeGenerator, error) {
		opts := do.MustInvoke[*Options](i)

		return shortener.NewCodeGenerator(opts.CodeLength)
	})

	do.Provide(injector, func(i *do.Injector) (*shortener.Allocator, error) {
		opts := do.MustInvoke[*Options](i)

		return shortener.NewAllocator(
			do.MustInvoke[shortener.Store](i),
			do.MustInvoke[shortener.CodeGenerator](i),
			opts.MaxRetries,
		), nil
	})

	do.Provide(injector, func(i *do.Injector) (*shortener.Resolver, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		var onClick shortener.ClickFunc
		if opts.InlineClicks {
			recorder := analytics.NewRecorder(do.MustInvoke[user.Store](i), logger)
			onClick = analytics.RecordClicks(recorder)
		} else {
			onClick = analytics.PublishClicks(do.MustInvoke[messaging.Publish[analytics.ClickEvent]](i))
		}

		return shortener.NewResolver(do.MustInvoke[shortener.Store](i), onClick, logger), nil
	})
}

// ConsumerGroupPackage provides the click consumer group for the
// consumer binary.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		logger := do.MustInvoke[*zap.Logger](i)
		client := do.MustInvoke[*redis.Client](i)

		subscriber, err := redisstream.NewSubscriber(
			redisstream.SubscriberConfig{
				Client:        client,
				ConsumerGroup: clickConsumerGroup,
			},
			watermill.NopLogger{},
		)
		if err != nil {
			return nil, err
		}

		recorder := analytics.NewRecorder(do.MustInvoke[user.Store](i), logger)

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(analytics.NewClickConsumer(subscriber, recorder, logger))

		return group, nil
	})
}

// RateLimitPackage provides the limiter over a Redis window store, or a
// memory store for the memory backend.
func RateLimitPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*ratelimit.Limiter, error) {
		opts := do.MustInvoke[*Options](i)

		if opts.Store == "memory" {
			return ratelimit.NewLimiter(store.NewRateLimitMemoryStore()), nil
		}

		return ratelimit.NewLimiter(store.NewRateLimitRedisStore(do.MustInvoke[*redis.Client](i))), nil
	})
}

// HTTPPackage provides the router and the huma API with every route and
// middleware registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)
		router := do.MustInvoke[*chi.Mux](i)

		api := humachi.New(router, huma.DefaultConfig("TinyURL", "1.0.0"))
		api.UseMiddleware(
			middleware.CollectMeta(api),
			middleware.RateLimit(api, do.MustInvoke[*ratelimit.Limiter](i), logger),
		)

		baseURL := opts.BaseURL
		if baseURL == "" {
			baseURL = fmt.Sprintf("http://localhost:%d", opts.Port)
		}

		tiny := handlers.NewTinyHandler(
			do.MustInvoke[*shortener.Allocator](i),
			do.MustInvoke[*shortener.Resolver](i),
			baseURL,
			logger,
		)
		users := handlers.NewUserHandler(do.MustInvoke[user.Store](i), logger)

		handlers.RegisterRoutes(api, tiny, users)

		var mongoCheck health.Checker
		if client, err := do.Invoke[*mongo.Client](i); err == nil {
			mongoCheck = health.NewMongoChecker(client)
		}

		health.RegisterRoutes(api, health.NewHandler(
			health.NewRedisChecker(do.MustInvoke[*redis.Client](i)),
			mongoCheck,
		))

		if opts.EnableDebug {
			handlers.RegisterDebugRoutes(api, handlers.NewDebugHandler(do.MustInvoke[*redis.Client](i)))
		}

		return api, nil
	})
}
