package config

const (
	defaultConfigPath         = "~/.config/revolver/config.toml"
	projectConfigName         = "revolver.toml"
	defaultLogDir             = "~/.local/share/revolver/logs"
	defaultStateDir           = "~/.local/state/revolver"
	defaultProxyWidth         = 640
	defaultProxyHeight        = 360
	defaultIntermediateWidth  = 1920
	defaultIntermediateHeight = 1080
	defaultCodec              = "mjpeg"
	defaultAudioRate          = 48000
	defaultFPS                = 24
	defaultFPSBase            = 1
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:   defaultLogDir,
			StateDir: defaultStateDir,
		},
		Proxy: Pass{
			Enabled: true,
			Width:   defaultProxyWidth,
			Height:  defaultProxyHeight,
		},
		Intermediate: Pass{
			Enabled: false,
			Width:   defaultIntermediateWidth,
			Height:  defaultIntermediateHeight,
		},
		Encode: Encode{
			Codec:     defaultCodec,
			AudioRate: defaultAudioRate,
			FPS:       defaultFPS,
			FPSBase:   defaultFPSBase,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
