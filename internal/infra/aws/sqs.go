package aws

import (
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"weather-spots-api/pkg/resource"
)

func NewSqsClient() *sqs.Client {
	return sqs.NewFromConfig(Config, func(o *sqs.Options) {
		// LocalStack endpoint for local development
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			o.BaseEndpoint = &endpoint
		}
	})
}
