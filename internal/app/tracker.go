package app

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/gps_tracker/internal/config"
	"github.com/relabs-tech/gps_tracker/internal/gps"
	"github.com/relabs-tech/gps_tracker/internal/transport"
)

// RunTracker polls the GPS driver and publishes fix reports as JSON to
// the configured MQTT topic. Fix acquired/lost transitions are logged so
// the journal shows when the receiver came up.
func RunTracker() error {
	cfg := config.Get()

	driver, closeTransport, err := openDriver(cfg)
	if err != nil {
		return err
	}
	defer closeTransport()

	if err := driver.Enable(); err != nil {
		return fmt.Errorf("tracker: power on: %w", err)
	}
	defer func() {
		if err := driver.Disable(); err != nil {
			log.Printf("tracker: power off: %v", err)
		}
	}()

	clientID := cfg.MQTTClientIDTracker
	if clientID == "" {
		clientID = "gps-tracker"
	}
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(clientID)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer client.Disconnect(250)
	log.Printf("tracker: connected to MQTT broker at %s", cfg.MQTTBroker)

	ticker := time.NewTicker(time.Duration(cfg.GPSPollInterval) * time.Millisecond)
	defer ticker.Stop()

	hadFix := false
	readErrors := 0
	log.Println("tracker: waiting for GPS fix...")

	for range ticker.C {
		processed, err := driver.Update()
		if err != nil {
			readErrors++
			log.Printf("tracker: update error (%d in a row): %v", readErrors, err)
			continue
		}
		readErrors = 0
		if !processed {
			continue
		}

		fix := driver.Fix()
		if hasFix := fix.HasFix(); hasFix != hadFix {
			if hasFix {
				log.Println("tracker: GPS fix acquired")
			} else {
				log.Println("tracker: GPS fix lost")
			}
			hadFix = hasFix
		}

		report := fix.Snapshot()
		if cfg.TargetWaypointSet {
			if d, ok := fix.DistanceTo(cfg.TargetLat, cfg.TargetLon); ok {
				report.TargetDistanceM = &d
			}
			if b, ok := fix.BearingTo(cfg.TargetLat, cfg.TargetLon); ok {
				report.TargetBearingDeg = &b
			}
		}

		payload, err := json.Marshal(report)
		if err != nil {
			log.Printf("tracker: JSON marshal error: %v", err)
			continue
		}

		// Retained so late subscribers get the last known state.
		token := client.Publish(cfg.TopicGPSFix, 0, true, payload)
		token.Wait()
		if token.Error() != nil {
			log.Printf("tracker: publish error: %v", token.Error())
		}
	}

	return nil
}

// openDriver builds the driver on the configured transport and wires the
// optional power-enable pin.
func openDriver(cfg *config.Config) (*gps.Driver, func(), error) {
	var (
		tr             gps.Transport
		closeTransport func()
	)

	switch cfg.GPSTransport {
	case "serial":
		s, err := transport.OpenSerial(cfg.GPSSerialPort, uint(cfg.GPSBaudRate))
		if err != nil {
			return nil, nil, err
		}
		tr = s
		closeTransport = func() { s.Close() }
		log.Printf("tracker: GPS serial port opened on %s at %d baud", cfg.GPSSerialPort, cfg.GPSBaudRate)

	case "i2c":
		t, err := transport.OpenI2C(cfg.GPSI2CBus, cfg.GPSI2CAddr)
		if err != nil {
			return nil, nil, err
		}
		tr = t
		closeTransport = func() { t.Close() }
		log.Printf("tracker: GPS I2C opened on bus %s at 0x%02X", cfg.GPSI2CBus, cfg.GPSI2CAddr)

	default:
		return nil, nil, fmt.Errorf("tracker: unknown GPS transport %q", cfg.GPSTransport)
	}

	var power gps.PowerControl
	if cfg.GPSEnablePin != "" {
		pin, err := transport.OpenEnablePin(cfg.GPSEnablePin)
		if err != nil {
			closeTransport()
			return nil, nil, err
		}
		power = pin
		log.Printf("tracker: GPS enable pin %s", cfg.GPSEnablePin)
	}

	driver := gps.NewDriver(tr, power)
	if cfg.GPSBufferLimit > 0 {
		driver.SetBufferLimit(cfg.GPSBufferLimit)
	}
	return driver, closeTransport, nil
}
