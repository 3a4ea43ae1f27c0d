// cmd/sensordemo/main.go
package main

import (
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"sensordata-go/record"
	"sensordata-go/sensor"
	"sensordata-go/snapshot"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := setupLogger(*verbose)
	logger.Info("sensordemo starting")

	// One reading per kind.
	temp := sensor.NewTemperature(25.3)
	hum := sensor.NewHumidity(50.25)
	lux := sensor.NewIlluminance(820)
	press := sensor.NewPressure(101325)
	wind := sensor.NewWindSpeed(4.2)
	volt := sensor.NewVoltage(12.345)
	amp := sensor.NewCurrent(-2.5)

	logReading(logger, "temperature", reading(temp.Value), reading(temp.Raw), temp.UnitText())
	logReading(logger, "humidity", reading(hum.Value), reading(hum.Raw), hum.UnitText())
	logReading(logger, "illuminance", reading(lux.Value), reading(lux.Raw), lux.UnitText())
	logReading(logger, "pressure", reading(press.Value), reading(press.Raw), press.UnitText())
	logReading(logger, "wind_speed", reading(wind.Value), reading(wind.Raw), wind.UnitText())
	logReading(logger, "voltage", reading(volt.Value), reading(volt.Raw), volt.UnitText())
	logReading(logger, "current", reading(amp.Value), reading(amp.Raw), amp.UnitText())

	// Out-of-range input is clamped, never rejected.
	var hot sensor.Temperature
	inRange := hot.Set(999)
	stored, _ := hot.Value()
	logger.WithFields(logrus.Fields{
		"input":    999.0,
		"in_range": inRange,
		"stored":   stored,
		"max":      hot.Max(),
	}).Warn("out-of-range input was clamped")

	// Round-trip a compact record through the codec and snapshot store.
	rec := record.Record{
		Temperature: temp,
		Humidity:    hum,
		Illuminance: lux,
		Pressure:    press,
	}
	data, err := rec.MarshalBinary()
	if err != nil {
		logger.WithError(err).Fatal("encode failed")
	}
	logger.WithFields(logrus.Fields{"bytes": len(data), "payload": data}).Info("record encoded")

	var back record.Record
	if err := back.UnmarshalBinary(data); err != nil {
		logger.WithError(err).Fatal("decode failed")
	}

	store := snapshot.NewStore(logger)
	logger.WithField("changed", store.Update(back)).Info("first snapshot")
	logger.WithField("changed", store.Update(back)).Info("repeated snapshot")

	back.Temperature.Clear()
	logger.WithField("changed", store.Update(back)).Info("after clearing temperature")
}

func setupLogger(verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// reading collapses a (value, ok) accessor into a loggable field.
func reading[V any](get func() (V, bool)) any {
	if v, ok := get(); ok {
		return v
	}
	return "undefined"
}

func logReading(l *logrus.Logger, kind string, value, raw any, symbol string) {
	l.WithFields(logrus.Fields{"value": value, "raw": raw, "unit": symbol}).Info(kind)
}
