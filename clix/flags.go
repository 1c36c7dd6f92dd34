package clix

import "github.com/spf13/cobra"

// GetFlagInt reads an int flag, dying with a usage error if it is
// missing or unparseable.
func GetFlagInt(cmd *cobra.Command, name string) int {
	v, err := cmd.Flags().GetInt(name)
	CheckError(err)
	return v
}

// GetFlagPositiveInt reads an int flag and requires it to be > 0.
func GetFlagPositiveInt(cmd *cobra.Command, name string) int {
	v := GetFlagInt(cmd, name)
	if v <= 0 {
		Die("value of flag --%s should be a positive integer", name)
	}
	return v
}

// GetFlagNonNegativeInt reads an int flag and requires it to be >= 0.
func GetFlagNonNegativeInt(cmd *cobra.Command, name string) int {
	v := GetFlagInt(cmd, name)
	if v < 0 {
		Die("value of flag --%s should not be negative", name)
	}
	return v
}

// GetFlagBool reads a bool flag, dying with a usage error if it is
// missing or unparseable.
func GetFlagBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	CheckError(err)
	return v
}

// GetFlagString reads a string flag.
func GetFlagString(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	CheckError(err)
	return v
}

// GetFlagFloat64 reads a float64 flag.
func GetFlagFloat64(cmd *cobra.Command, name string) float64 {
	v, err := cmd.Flags().GetFloat64(name)
	CheckError(err)
	return v
}

// GetFlagUint64 reads a uint64 flag.
func GetFlagUint64(cmd *cobra.Command, name string) uint64 {
	v, err := cmd.Flags().GetUint64(name)
	CheckError(err)
	return v
}
