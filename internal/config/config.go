package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config holds all application configuration values.
type Config struct {
	// MQTT
	MQTTBroker          string
	MQTTClientIDTracker string
	MQTTClientIDConsole string
	MQTTClientIDWeb     string
	MQTTClientIDDisplay string

	// Topics
	TopicGPSFix string

	// GPS transport: "serial" or "i2c"
	GPSTransport  string
	GPSSerialPort string
	GPSBaudRate   int
	GPSI2CBus     string
	GPSI2CAddr    uint16
	GPSEnablePin  string // optional power-enable GPIO, e.g. "GPIO17"

	// Driver tuning
	GPSPollInterval int // milliseconds
	GPSBufferLimit  int // bytes; 0 keeps the driver default

	// Target waypoint for distance/bearing reporting (optional)
	TargetLat         float64
	TargetLon         float64
	TargetWaypointSet bool

	// Web server
	WebServerPort int

	// Display
	DisplayUpdateInterval int // milliseconds
}

// Package-level unexported variables for the config singleton:
// globalConfig is only reachable through InitGlobal/Get so every consumer
// sees one validated instance, configOnce makes repeated InitGlobal calls
// harmless, and configMu lets concurrent readers share Get without
// blocking each other.
var (
	globalConfig *Config
	configOnce   sync.Once
	configMu     sync.RWMutex
)

// Load reads the configuration file and returns a Config struct.
func Load(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	cfg := &Config{
		GPSI2CAddr: 0x10,
		GPSI2CBus:  "1",
	}
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid config line %d: %q", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if err := cfg.setValue(key, value); err != nil {
			return nil, fmt.Errorf("config line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setValue sets a config value based on the key.
func (c *Config) setValue(key, value string) error {
	switch key {
	// MQTT
	case "MQTT_BROKER":
		c.MQTTBroker = value
	case "MQTT_CLIENT_ID_TRACKER":
		c.MQTTClientIDTracker = value
	case "MQTT_CLIENT_ID_CONSOLE":
		c.MQTTClientIDConsole = value
	case "MQTT_CLIENT_ID_WEB":
		c.MQTTClientIDWeb = value
	case "MQTT_CLIENT_ID_DISPLAY":
		c.MQTTClientIDDisplay = value

	// Topics
	case "TOPIC_GPS_FIX":
		c.TopicGPSFix = value

	// GPS transport
	case "GPS_TRANSPORT":
		if value != "serial" && value != "i2c" {
			return fmt.Errorf("GPS_TRANSPORT must be \"serial\" or \"i2c\", got %q", value)
		}
		c.GPSTransport = value
	case "GPS_SERIAL_PORT":
		c.GPSSerialPort = value
	case "GPS_BAUD_RATE":
		rate, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid GPS_BAUD_RATE %q: %w", value, err)
		}
		c.GPSBaudRate = rate
	case "GPS_I2C_BUS":
		c.GPSI2CBus = value
	case "GPS_I2C_ADDR":
		addr, err := strconv.ParseUint(value, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid GPS_I2C_ADDR %q: %w", value, err)
		}
		c.GPSI2CAddr = uint16(addr)
	case "GPS_ENABLE_PIN":
		c.GPSEnablePin = value

	// Driver tuning
	case "GPS_POLL_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid GPS_POLL_INTERVAL %q: %w", value, err)
		}
		c.GPSPollInterval = interval
	case "GPS_BUFFER_LIMIT":
		limit, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid GPS_BUFFER_LIMIT %q: %w", value, err)
		}
		if limit < 0 {
			return fmt.Errorf("GPS_BUFFER_LIMIT must be >= 0, got %d", limit)
		}
		c.GPSBufferLimit = limit

	// Target waypoint
	case "TARGET_LAT":
		lat, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid TARGET_LAT %q: %w", value, err)
		}
		c.TargetLat = lat
		c.TargetWaypointSet = true
	case "TARGET_LON":
		lon, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid TARGET_LON %q: %w", value, err)
		}
		c.TargetLon = lon
		c.TargetWaypointSet = true

	// Web server
	case "WEB_SERVER_PORT":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid WEB_SERVER_PORT %q: %w", value, err)
		}
		c.WebServerPort = port

	// Display
	case "DISPLAY_UPDATE_INTERVAL":
		interval, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid DISPLAY_UPDATE_INTERVAL %q: %w", value, err)
		}
		c.DisplayUpdateInterval = interval

	default:
		return fmt.Errorf("unknown config key: %q", key)
	}

	return nil
}

// validate checks that all required fields are set.
func (c *Config) validate() error {
	if c.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required")
	}
	if c.TopicGPSFix == "" {
		return fmt.Errorf("TOPIC_GPS_FIX is required")
	}
	switch c.GPSTransport {
	case "serial":
		if c.GPSSerialPort == "" {
			return fmt.Errorf("GPS_SERIAL_PORT is required for serial transport")
		}
		if c.GPSBaudRate == 0 {
			return fmt.Errorf("GPS_BAUD_RATE is required for serial transport")
		}
	case "i2c":
		// Bus and address carry PA1010D defaults.
	default:
		return fmt.Errorf("GPS_TRANSPORT is required (\"serial\" or \"i2c\")")
	}
	if c.GPSPollInterval == 0 {
		return fmt.Errorf("GPS_POLL_INTERVAL is required")
	}
	return nil
}

// InitGlobal initializes the global configuration from file. Safe to call
// more than once; only the first call loads.
func InitGlobal(configPath string) error {
	var err error
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		globalConfig, err = Load(configPath)
	})
	return err
}

// Get returns the global configuration instance. InitGlobal must be
// called first, or this will return nil.
func Get() *Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return globalConfig
}
