package adapter

import (
	"github.com/spf13/viper"
)

// FuzzBothMethodsKey is the viper key for the process-wide policy that runs
// every mutation against both transmission methods.
const FuzzBothMethodsKey = "fuzz.both_methods"

// AuditConfig resolves process-wide audit configuration. The engine consults
// it only when Options.RespectMethod is unset.
type AuditConfig interface {
	// FuzzBothMethods reports whether mutations should also be emitted with
	// the transmission method switched.
	FuzzBothMethods() bool
}

// ViperAuditConfig resolves the policy from the loaded viper configuration.
type ViperAuditConfig struct{}

// NewViperAuditConfig creates a ViperAuditConfig.
func NewViperAuditConfig() *ViperAuditConfig {
	return &ViperAuditConfig{}
}

// FuzzBothMethods implements AuditConfig.
func (c *ViperAuditConfig) FuzzBothMethods() bool {
	return viper.GetBool(FuzzBothMethodsKey)
}

// StaticAuditConfig is a fixed-value AuditConfig, useful for embedding the
// resolved policy at a call boundary.
type StaticAuditConfig bool

// FuzzBothMethods implements AuditConfig.
func (c StaticAuditConfig) FuzzBothMethods() bool {
	return bool(c)
}
