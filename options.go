package loadobj

import "log"

// LoadOptions holds configuration for a Loader.
type LoadOptions struct {
	// Parsing mode
	strict bool

	// Input handling
	decompress bool // inflate gzip or zlib payloads before parsing

	// Diagnostics
	logger *log.Logger // receives unsupported lines, nil to disable
}

// defaultOptions returns the default load options.
func defaultOptions() LoadOptions {
	return LoadOptions{
		strict:     false,
		decompress: false,
		logger:     nil,
	}
}

// clone creates a copy of LoadOptions. The logger is shared.
func (o LoadOptions) clone() LoadOptions {
	return LoadOptions{
		strict:     o.strict,
		decompress: o.decompress,
		logger:     o.logger,
	}
}
