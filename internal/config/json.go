package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type so operators can write "10s" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		Catalog struct {
			CSVPath string `json:"csv_path"`
		} `json:"catalog,omitempty"`

		State struct {
			FilePath  string `json:"file_path"`
			SQLiteDSN string `json:"sqlite_dsn"`
		} `json:"state,omitempty"`

		Remote struct {
			URL     string   `json:"url"`
			Key     string   `json:"key"`
			Table   string   `json:"table"`
			Timeout Duration `json:"timeout"`
		} `json:"remote,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			Catalog: Catalog{
				CSVPath: jsonCfg.Storage.Catalog.CSVPath,
			},
			State: State{
				FilePath:  jsonCfg.Storage.State.FilePath,
				SQLiteDSN: jsonCfg.Storage.State.SQLiteDSN,
			},
			Remote: Remote{
				URL:     jsonCfg.Storage.Remote.URL,
				Key:     jsonCfg.Storage.Remote.Key,
				Table:   jsonCfg.Storage.Remote.Table,
				Timeout: time.Duration(jsonCfg.Storage.Remote.Timeout),
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
