package traceability

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Stage is the supply-chain phase a record belongs to.
type Stage int

const (
	UnknownStage Stage = iota
	Farm
	Processing
	Distribution
	Retail
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		UnknownStage: "unknown",
		Farm:         "farm",
		Processing:   "processing",
		Distribution: "distribution",
		Retail:       "retail",
	}
}

// ParseStage converts the wire name of a stage.
func ParseStage(s string) (Stage, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for stage, str := range getStageStrings() {
		if stage != UnknownStage && str == name {
			return stage, nil
		}
	}
	return UnknownStage, errs.NewValueIsInvalidErrorWithCause(
		"stage is invalid",
		fmt.Errorf("%q is not one of farm, processing, distribution, retail", s),
	)
}

func (s Stage) Validate() error {
	if s < Farm || s > Retail {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// VerificationStatus is the review state of a record. New records are Pending.
type VerificationStatus int

const (
	UnknownVerification VerificationStatus = iota
	VerificationPending
	Verified
	Rejected
)

func getVerificationStrings() map[VerificationStatus]string {
	return map[VerificationStatus]string{
		UnknownVerification: "unknown",
		VerificationPending: "pending",
		Verified:            "verified",
		Rejected:            "rejected",
	}
}

// ParseVerificationStatus converts the wire name of a verification status.
// The empty string maps to VerificationPending.
func ParseVerificationStatus(s string) (VerificationStatus, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return VerificationPending, nil
	}
	for status, str := range getVerificationStrings() {
		if status != UnknownVerification && str == name {
			return status, nil
		}
	}
	return UnknownVerification, errs.NewValueIsInvalidErrorWithCause(
		"verification status is invalid",
		fmt.Errorf("%q is not one of pending, verified, rejected", s),
	)
}

func (v VerificationStatus) Validate() error {
	if v < VerificationPending || v > Rejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"verification status is invalid",
			fmt.Errorf("%d is not a valid verification status", v),
		)
	}
	return nil
}

func (v VerificationStatus) String() string {
	if str, ok := getVerificationStrings()[v]; ok {
		return str
	}
	return "unknown"
}
