package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lefergusion/storefront/config"
	"github.com/lefergusion/storefront/pkg/sigctx"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	partitions        = 3
	replicationFactor = 3
	cleanupPolicy     = "delete"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()

	cl := createClient(cfg.Broker.SeedBrokers)
	defer cl.Close()

	topic := cfg.Broker.ClientEventsTopic
	fmt.Printf("initializing topic %q...\n", topic)
	start := time.Now()

	if err := makeTopic(sigCtx, cl, topic); err != nil {
		fmt.Printf("failed to create topic: \n%s\n", err)
		return
	}

	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func createClient(seedBrokers []string) *kadm.Client {
	cl, err := kadm.NewOptClient(
		kgo.SeedBrokers(seedBrokers...),
	)
	if err != nil {
		panic(err) // develop mistake
	}
	return cl
}

func makeTopic(ctx context.Context, cl *kadm.Client, topic string) error {
	policy := cleanupPolicy
	minISR := "1"

	config := map[string]*string{
		"cleanup.policy":      &policy,
		"min.insync.replicas": &minISR,
	}

	responses, err := cl.CreateTopics(
		ctx,
		partitions,
		replicationFactor,
		config,
		topic,
	)
	if err != nil {
		return err
	}

	var errs []error
	for _, res := range responses.Sorted() {
		if res.Err != nil {
			if errors.Is(res.Err, kerr.TopicAlreadyExists) {
				fmt.Printf("topic: %q already exists\n", res.Topic)
				continue
			}
			errs = append(errs, res.Err)
			continue
		}
		fmt.Printf("topic: %q successfully created\n", res.Topic)
	}

	return errors.Join(errs...)
}
