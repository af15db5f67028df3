package main

import (
	"fmt"

	"github.com/kardianos/osext"
	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version and host CPU information",
		RunE: func(cmd *cobra.Command, args []string) error {
			printInfo()
			fmt.Printf("cpu:        %s\n", cpuid.CPU.BrandName)
			fmt.Printf("cores:      %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
			fmt.Printf("features:   AVX2=%v AVX512F=%v SSE4.2=%v\n",
				cpuid.CPU.Supports(cpuid.AVX2),
				cpuid.CPU.Supports(cpuid.AVX512F),
				cpuid.CPU.Supports(cpuid.SSE42))

			exe, err := osext.Executable()
			if err == nil {
				fmt.Printf("executable: %s\n", exe)
			}
			return nil
		},
	}
}
