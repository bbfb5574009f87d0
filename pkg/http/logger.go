package http

import "weather-spots-api/pkg/log"

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, httpStatus int, latency int64)

	// LogResponseError is called immediately after receiving an error response (error HTTP status)
	LogResponseError(method, url string, httpStatus int, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, httpStatus int, err error, retryCount, maxRetries int)
}

// defaultHTTPLogger logs through the application zap logger.
type defaultHTTPLogger struct{}

func (defaultHTTPLogger) LogRequest(method, url string) {
	log.Debugf("http request %s %s", method, url)
}

func (defaultHTTPLogger) LogResponseSuccess(method, url string, httpStatus int, latency int64) {
	log.Debugf("http response %s %s status=%d latency=%dms", method, url, httpStatus, latency)
}

func (defaultHTTPLogger) LogResponseError(method, url string, httpStatus int, latency int64, err error) {
	log.Warnf("http response %s %s status=%d latency=%dms error=%v", method, url, httpStatus, latency, err)
}

func (defaultHTTPLogger) LogRequestRetry(method, url string, httpStatus int, err error, retryCount, maxRetries int) {
	log.Warnf("http retry %d/%d %s %s status=%d error=%v", retryCount, maxRetries, method, url, httpStatus, err)
}
