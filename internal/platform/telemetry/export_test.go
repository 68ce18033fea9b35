package telemetry

var OTLPTarget = otlpTarget
