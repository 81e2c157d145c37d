package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InitClient creates the Pub/Sub client shared by the publisher and the subscriber workers.
type InitClient struct {
	Logger    *log.Logger `resolve:""`
	ProjectID string      `config:"PUBSUB_PROJECT_ID"`
	client    *pubsubV2.Client
}

// Initialize creates the client unless one was provided and registers it.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	depend.Register(i.client)

	return ctx, nil
}

// Close releases the client connection.
func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}

// InitTopics provisions the appointments topic and its subscription when the
// client talks to the Pub/Sub emulator.
type InitTopics struct {
	Logger         *log.Logger      `resolve:""`
	Client         *pubsubV2.Client `resolve:""`
	ProjectID      string           `config:"PUBSUB_PROJECT_ID"`
	EmulatorHost   string           `config:"PUBSUB_EMULATOR_HOST" default:"-"`
	SubscriptionID string           `config:"APPOINTMENT_EVENTS_SUBSCRIPTION_ID" default:"appointments-sub"`
}

// Initialize creates the topic and subscription when they do not exist yet.
func (i InitTopics) Initialize(ctx context.Context) (context.Context, error) {
	if i.EmulatorHost == "-" || i.EmulatorHost == "" {
		return ctx, nil
	}

	topicName := fmt.Sprintf("projects/%s/topics/%s", i.ProjectID, domain.OutboxTopic_Appointments)
	_, err := i.Client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{Name: topicName})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return ctx, fmt.Errorf("failed to create topic %s: %w", topicName, err)
	}

	subName := fmt.Sprintf("projects/%s/subscriptions/%s", i.ProjectID, i.SubscriptionID)
	_, err = i.Client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  subName,
		Topic: topicName,
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return ctx, fmt.Errorf("failed to create subscription %s: %w", subName, err)
	}

	i.Logger.Printf("InitTopics: topic %s and subscription %s ready", topicName, subName)
	return ctx, nil
}
