package di

import (
	"context"
	"time"

	"fitit-backend/application/ports"
	"fitit-backend/infrastructure/config"
	"fitit-backend/infrastructure/messaging/eventbridge"
	"fitit-backend/infrastructure/persistence/dynamodb"
	"fitit-backend/pkg/auth"
	"fitit-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// devJWTSecret is only used when no secret is configured outside production.
const devJWTSecret = "development-secret-change-in-production"

// ProvideLogger creates a new logger instance.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates the process-wide AWS configuration. It is loaded
// once and shared, immutably, by every client.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client.
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client.
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client.
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideNotifier creates the change notifier repositories publish to, or
// nil when events are disabled.
func ProvideNotifier(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) dynamodb.ChangeNotifier {
	if !cfg.EnableEvents {
		return nil
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates the operation recorder, or nil when metrics are
// disabled.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) dynamodb.OperationRecorder {
	if !cfg.EnableMetrics {
		return nil
	}
	return observability.NewMetrics(client, "FitIt/"+cfg.Environment, logger)
}

// ProvideProductRepository creates the product repository.
func ProvideProductRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger, notifier dynamodb.ChangeNotifier, metrics dynamodb.OperationRecorder) ports.ProductRepository {
	repo := dynamodb.NewProductRepository(client, cfg.ProductsTable, logger)
	repo.SetNotifier(notifier)
	repo.SetMetrics(metrics)
	return repo
}

// ProvideServiceProfileRepository creates the service profile repository.
func ProvideServiceProfileRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger, notifier dynamodb.ChangeNotifier, metrics dynamodb.OperationRecorder) ports.ServiceProfileRepository {
	repo := dynamodb.NewServiceProfileRepository(client, cfg.ServiceProfilesTable, logger)
	repo.SetNotifier(notifier)
	repo.SetMetrics(metrics)
	return repo
}

// ProvideServiceRequestRepository creates the service request repository.
func ProvideServiceRequestRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger, notifier dynamodb.ChangeNotifier, metrics dynamodb.OperationRecorder) ports.ServiceRequestRepository {
	repo := dynamodb.NewServiceRequestRepository(client, cfg.ServiceRequestsTable, logger)
	repo.SetNotifier(notifier)
	repo.SetMetrics(metrics)
	return repo
}

// ProvideChatRepository creates the chat message repository.
func ProvideChatRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger, notifier dynamodb.ChangeNotifier, metrics dynamodb.OperationRecorder) ports.ChatRepository {
	repo := dynamodb.NewChatRepository(client, cfg.ChatTable, logger)
	repo.SetNotifier(notifier)
	repo.SetMetrics(metrics)
	return repo
}

// ProvideUserRepository creates the user repository.
func ProvideUserRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger, notifier dynamodb.ChangeNotifier, metrics dynamodb.OperationRecorder) ports.UserRepository {
	repo := dynamodb.NewUserRepository(client, cfg.UsersTable, logger)
	repo.SetNotifier(notifier)
	repo.SetMetrics(metrics)
	return repo
}

// ProvideJWTValidator creates the token validator.
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" && !cfg.IsProduction() {
		secret = devJWTSecret
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
	})
}

// ProvideRateLimiter creates the per-IP rate limiter.
func ProvideRateLimiter(cfg *config.Config) auth.RateLimiter {
	return auth.NewTokenBucketLimiter(cfg.RateLimitPerMinute, time.Minute)
}

// ProvideTracer creates the X-Ray tracer.
func ProvideTracer() *observability.Tracer {
	return observability.NewTracer("fitit-backend")
}
