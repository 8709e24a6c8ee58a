package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	SampleRows        int    `usage:"number of sample employees loaded at startup"`
	Seed              uint64 `usage:"random seed for sample data, 0 picks one from the clock"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	EnableAccessLog   bool   `usage:"log every http request"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:          "127.0.0.1:8080",
		SampleRows:        10,
		Seed:              0,
		EnableCompression: true,
		EnableAccessLog:   true,
		Version:           false,
		ShowBanner:        true,
		ShowConfig:        false,
	}
}
