package influx

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	api "github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/HF7weatherman/hfutils/internal/domain"
)

// Config holds the connection settings for an InfluxDB instance.
type Config struct {
	URL    string `yaml:"url"`
	Token  string `yaml:"token"`
	Org    string `yaml:"org"`
	Bucket string `yaml:"bucket"`
}

// Client reads and writes climate time series in InfluxDB.
type Client struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	queryAPI api.QueryAPI
	bucket   string
}

// NewClient validates the config and builds a client.
func NewClient(config Config) (*Client, error) {
	if config.URL == "" {
		return nil, errors.New("influx: URL must be set")
	}
	if config.Token == "" {
		return nil, errors.New("influx: auth token must be set")
	}
	if config.Org == "" {
		return nil, errors.New("influx: org must be set")
	}
	if config.Bucket == "" {
		return nil, errors.New("influx: bucket must be set")
	}

	client := influxdb2.NewClient(config.URL, config.Token)
	return &Client{
		client:   client,
		writeAPI: client.WriteAPIBlocking(config.Org, config.Bucket),
		queryAPI: client.QueryAPI(config.Org),
		bucket:   config.Bucket,
	}, nil
}

// FetchGrid queries one field of one measurement over a time window and
// assembles the rows into a single-variable dataset, pivoting the "lon" tag
// into the longitude axis.
func (c *Client) FetchGrid(
	ctx context.Context,
	spec domain.FetchSpec,
) (domain.Dataset, error) {
	query := fmt.Sprintf(`from(bucket: %q)
  |> range(start: %s, stop: %s)
  |> filter(fn: (r) => r._measurement == %q and r._field == %q)
  |> keep(columns: ["_time", "_value", "lon"])`,
		c.bucket,
		spec.Start.UTC().Format(time.RFC3339),
		spec.Stop.UTC().Format(time.RFC3339),
		spec.Measurement,
		spec.Field,
	)

	result, err := c.queryAPI.Query(ctx, query)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("influx query: %w", err)
	}

	var samples []domain.Sample
	for result.Next() {
		record := result.Record()

		lonTag, ok := record.ValueByKey("lon").(string)
		if !ok {
			return domain.Dataset{}, fmt.Errorf(
				"influx query: row at %s has no lon tag", record.Time().Format(time.RFC3339))
		}
		lon, err := strconv.ParseFloat(lonTag, 64)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("influx query: bad lon tag %q: %w", lonTag, err)
		}
		value, ok := record.Value().(float64)
		if !ok {
			return domain.Dataset{}, fmt.Errorf(
				"influx query: non-float value %v at %s", record.Value(), record.Time().Format(time.RFC3339))
		}

		samples = append(samples, domain.Sample{
			Time:  record.Time(),
			Lon:   lon,
			Value: value,
		})
	}
	if err := result.Err(); err != nil {
		return domain.Dataset{}, fmt.Errorf("influx query: %w", err)
	}
	if len(samples) == 0 {
		return domain.Dataset{}, fmt.Errorf(
			"influx query: no rows for %s/%s in window", spec.Measurement, spec.Field)
	}

	return domain.FromSamples(spec.Measurement, domain.VarName(spec.Field), "", samples)
}

// ExportCycle writes a diurnal cycle as points under the given measurement,
// one point per variable and local-time key. Keys are encoded as offsets
// from the Unix epoch day so time-of-day survives the round trip.
func (c *Client) ExportCycle(
	ctx context.Context,
	measurement string,
	cycle domain.DiurnalCycle,
) error {
	epochDay := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, name := range cycle.VarNames() {
		means := cycle.Means[name]
		counts := cycle.Counts[name]
		for idx, key := range cycle.Keys {
			p := influxdb2.NewPoint(measurement,
				map[string]string{
					"variable":   name.String(),
					"local_time": key.Clock(),
				},
				map[string]interface{}{
					"mean":  means[idx],
					"count": counts[idx],
				},
				epochDay.Add(time.Duration(key)*time.Second))
			if err := c.writeAPI.WritePoint(ctx, p); err != nil {
				return fmt.Errorf("influx write: %w", err)
			}
		}
	}
	return nil
}

// Close shuts down the underlying HTTP client.
func (c *Client) Close() {
	c.client.Close()
}

// Compile-time assertions that Client implements the domain contracts.
var (
	_ domain.DatasetSource = (*Client)(nil)
	_ domain.CycleExporter = (*Client)(nil)
)
