package processor

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"weather-spots-api/internal/domain/entity"
	"weather-spots-api/internal/domain/usecase/weather"
	"weather-spots-api/pkg/log"
)

type WeatherProcessor struct {
	weatherUseCase weather.UseCase
}

func NewWeatherProcessor(weatherUseCase weather.UseCase) *WeatherProcessor {
	return &WeatherProcessor{
		weatherUseCase: weatherUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *WeatherProcessor) HandleMessage(msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	log.Infof("Processing weather fetch message: %s", *msg.MessageId)

	var spot entity.Spot
	if err := json.Unmarshal([]byte(*msg.Body), &spot); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}
	if spot.ID == "" {
		return fmt.Errorf("message carries no spot id")
	}

	// Freshness-gated, so a redelivered message does not hit the upstream
	// API twice.
	if _, err := p.weatherUseCase.FetchAndSave(spot, false); err != nil {
		return fmt.Errorf("failed to fetch weather for spot %s: %w", spot.ID, err)
	}

	log.Infof("Successfully fetched initial weather for spot: %s", spot.CityName)
	return nil
}
