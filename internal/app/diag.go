package app

import (
	"fmt"
	"log"
	"time"

	"github.com/relabs-tech/gps_tracker/internal/config"
	"github.com/relabs-tech/gps_tracker/internal/gps"
	"github.com/relabs-tech/gps_tracker/internal/transport"
)

// RunDiag checks the I2C wiring: scans the bus, probes the receiver
// repeatedly, then monitors raw NMEA output for ten seconds.
func RunDiag() error {
	cfg := config.Get()
	if cfg.GPSTransport != "i2c" {
		return fmt.Errorf("diag: GPS_TRANSPORT must be \"i2c\" for bus diagnostics")
	}

	t, err := transport.OpenI2C(cfg.GPSI2CBus, cfg.GPSI2CAddr)
	if err != nil {
		return err
	}
	defer t.Close()

	log.Println("diag: scanning I2C bus...")
	devices := t.Scan()
	if len(devices) == 0 {
		log.Println("diag: no I2C devices found")
	}
	found := false
	for _, addr := range devices {
		log.Printf("diag: device at 0x%02X", addr)
		if addr == t.Addr() {
			found = true
		}
	}
	if found {
		log.Printf("diag: GPS module found at 0x%02X", t.Addr())
	} else {
		log.Printf("diag: GPS module NOT found at expected address 0x%02X", t.Addr())
	}

	log.Println("diag: testing continuous reads...")
	for i := 0; i < 10; i++ {
		status := "OK"
		if !t.Connected() {
			status = "FAIL"
		}
		log.Printf("diag: read %d: %s", i+1, status)
		time.Sleep(500 * time.Millisecond)
	}

	log.Println("diag: monitoring raw NMEA for 10s...")
	driver := gps.NewDriver(t, nil)
	deadline := time.Now().Add(10 * time.Second)
	var last string
	for time.Now().Before(deadline) {
		if _, err := driver.Update(); err != nil {
			log.Printf("diag: update error: %v", err)
		}
		if s := driver.Fix().LastSentence(); s != "" && s != last {
			last = s
			log.Printf("diag: NMEA: %s", s)
		}
		time.Sleep(100 * time.Millisecond)
	}
	return nil
}
