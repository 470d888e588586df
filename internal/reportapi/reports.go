package reportapi

import (
	"context"
	"encoding/json"
)

const reportNamespace = "customreport.reportapi"

// FirstReportEndpoint is the fixed report the report view loads.
const FirstReportEndpoint = reportNamespace + ".get_first_report"

// FirstReport fetches the fixed first report without parameters.
func FirstReport[T any](ctx context.Context, c *Client) (*Envelope[T], error) {
	return Call[T](ctx, c, FirstReportEndpoint, nil, MethodGet)
}

// CustomReport fetches customreport.reportapi.<reportPath> with params as
// the query string.
func CustomReport[T any](ctx context.Context, c *Client, reportPath string, params Params) (*Envelope[T], error) {
	return Call[T](ctx, c, reportNamespace+"."+reportPath, params, MethodGet)
}

// FetchFirstReport is FirstReport with the payload left undecoded.
func (c *Client) FetchFirstReport(ctx context.Context) (*Envelope[json.RawMessage], error) {
	return FirstReport[json.RawMessage](ctx, c)
}
