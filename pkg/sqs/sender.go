package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// BatchMessage represents a message to be sent in batch
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// BatchResult represents the result of a batch send operation
type BatchResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

// SQSClient defines the interface for SQS send operations
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
}

// Sender handles sending messages to SQS queues
type Sender struct {
	sqsClient SQSClient
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SQSClient) *Sender {
	return &Sender{
		sqsClient: sqsClient,
	}
}

// SendMessage serializes the provided body to JSON and sends it to the specified queue
func (s *Sender) SendMessage(queueName string, body any) error {
	ctx := context.Background()

	queueURL, err := s.getQueueURL(ctx, queueName)
	if err != nil {
		return fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	messageBody := string(jsonBody)
	_, err = s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &queueURL,
		MessageBody: &messageBody,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}

	return nil
}

// SendMessageBatch sends messages in batches of 10 (the SQS limit) in
// parallel and reports per-message outcomes.
func (s *Sender) SendMessageBatch(queueName string, messages []BatchMessage) (*BatchResult, error) {
	if len(messages) == 0 {
		return &BatchResult{
			Successful: []string{},
			Failed:     []string{},
		}, nil
	}

	ctx := context.Background()

	queueURL, err := s.getQueueURL(ctx, queueName)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	const batchSize = 10
	var batches [][]BatchMessage
	for i := 0; i < len(messages); i += batchSize {
		end := i + batchSize
		if end > len(messages) {
			end = len(messages)
		}
		batches = append(batches, messages[i:end])
	}

	result := &BatchResult{
		Successful: []string{},
		Failed:     []string{},
	}

	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, batch := range batches {
		wg.Add(1)
		go func(batch []BatchMessage) {
			defer wg.Done()

			successful, failed := s.sendSingleBatch(ctx, queueURL, batch)

			mu.Lock()
			result.Successful = append(result.Successful, successful...)
			result.Failed = append(result.Failed, failed...)
			mu.Unlock()
		}(batch)
	}

	wg.Wait()
	return result, nil
}

// sendSingleBatch sends one SQS batch request and splits the entry IDs into
// successful and failed. Entries that cannot be serialized fail client-side.
func (s *Sender) sendSingleBatch(ctx context.Context, queueURL string, batch []BatchMessage) ([]string, []string) {
	var successful, failed []string
	var entries []types.SendMessageBatchRequestEntry

	for i := range batch {
		jsonBody, err := json.Marshal(batch[i].Body)
		if err != nil {
			failed = append(failed, batch[i].MessageID)
			continue
		}
		messageBody := string(jsonBody)
		entries = append(entries, types.SendMessageBatchRequestEntry{
			Id:          &batch[i].MessageID,
			MessageBody: &messageBody,
		})
	}

	if len(entries) == 0 {
		return successful, failed
	}

	output, err := s.sqsClient.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: &queueURL,
		Entries:  entries,
	})
	if err != nil {
		for i := range entries {
			failed = append(failed, *entries[i].Id)
		}
		return successful, failed
	}

	for _, entry := range output.Successful {
		successful = append(successful, *entry.Id)
	}
	for _, entry := range output.Failed {
		failed = append(failed, *entry.Id)
	}

	return successful, failed
}

func (s *Sender) getQueueURL(ctx context.Context, queueName string) (string, error) {
	result, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return "", err
	}
	return *result.QueueUrl, nil
}
