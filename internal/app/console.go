package app

import (
	"encoding/json"
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/relabs-tech/gps_tracker/internal/config"
	"github.com/relabs-tech/gps_tracker/internal/gps"
)

// RunConsole subscribes to the fix topic and prints a one-line summary
// per report.
func RunConsole() error {
	cfg := config.Get()

	clientID := cfg.MQTTClientIDConsole
	if clientID == "" {
		clientID = "gps-console"
	}
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBroker).
		SetClientID(clientID)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: connected to MQTT broker at %s", cfg.MQTTBroker)

	token := client.Subscribe(cfg.TopicGPSFix, 0, func(_ mqtt.Client, msg mqtt.Message) {
		var r gps.Report
		if err := json.Unmarshal(msg.Payload(), &r); err != nil {
			log.Printf("console: report unmarshal error: %v", err)
			return
		}
		printReport(r)
	})
	token.Wait()
	if token.Error() != nil {
		return token.Error()
	}
	log.Printf("console: subscribed to %s", cfg.TopicGPSFix)

	// Callbacks do the work from here on.
	select {}
}

func printReport(r gps.Report) {
	if !r.HasFix || r.Latitude == nil || r.Longitude == nil {
		fmt.Printf("[GPS] searching for satellites... (%d visible)\n", r.Satellites)
		return
	}

	fmt.Printf("[GPS] %9.6f, %10.6f  sats=%d", *r.Latitude, *r.Longitude, r.Satellites)
	if r.AltitudeM != nil {
		fmt.Printf("  alt=%.1fm", *r.AltitudeM)
	}
	if r.SpeedKMH != nil {
		fmt.Printf("  spd=%.1fkm/h", *r.SpeedKMH)
	}
	if r.CourseDeg != nil {
		fmt.Printf("  crs=%.1f", *r.CourseDeg)
	}
	if r.Date != "" && r.Time != "" {
		fmt.Printf("  %s %s", r.Date, r.Time)
	}
	fmt.Println()

	if r.TargetDistanceM != nil && r.TargetBearingDeg != nil {
		fmt.Printf("[NAV] target %.2f km @ %.1f deg\n",
			*r.TargetDistanceM/1000, *r.TargetBearingDeg)
	}
}
