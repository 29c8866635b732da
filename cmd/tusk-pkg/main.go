package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"tusk.dev/launcher/internal/compositor"
	"tusk.dev/launcher/internal/packaging"
)

const usage = `Usage: tusk-pkg <command> [flags]

Commands:
  version   print the package version derived from git
  install   stage the package files under a package root
  pkgbuild  print the PKGBUILD
  rules     print the compositor window rules (sway, hyprland)
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "version":
		err = versionCommand(os.Args[2:])
	case "install":
		err = installCommand(os.Args[2:])
	case "pkgbuild":
		err = pkgbuildCommand(os.Args[2:])
	case "rules":
		err = rulesCommand(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logrus.Errorf("%+v", err)
		os.Exit(1)
	}
}

func versionCommand(args []string) error {
	flags := flag.NewFlagSet("version", flag.ExitOnError)
	dir := flags.String("dir", ".", "Git checkout")
	flags.Parse(args)
	version, err := packaging.DeriveVersion(packaging.ExecGitRunner{}, *dir)
	if err != nil {
		return err
	}
	fmt.Println(version)
	return nil
}

func installCommand(args []string) error {
	flags := flag.NewFlagSet("install", flag.ExitOnError)
	root := flags.String("root", "", "Package root")
	binary := flags.String("binary", "build/"+packaging.PackageName, "Executable to install")
	license := flags.String("license", "", "License file")
	readme := flags.String("readme", "", "README file")
	flags.Parse(args)
	if *root == "" {
		return fmt.Errorf("--root is required")
	}
	_, err := packaging.Install(*root, packaging.Files{
		Binary:  *binary,
		License: *license,
		Readme:  *readme,
	})
	return err
}

func pkgbuildCommand(args []string) error {
	flags := flag.NewFlagSet("pkgbuild", flag.ExitOnError)
	dir := flags.String("dir", ".", "Git checkout")
	flags.Parse(args)
	version, err := packaging.DeriveVersion(packaging.ExecGitRunner{}, *dir)
	if err != nil {
		logrus.Warnf("Cannot derive the version: %s", err)
		version = packaging.FormatVersion("0.0.0", "0", "0000000")
	}
	return packaging.RenderPKGBUILD(os.Stdout, packaging.DefaultMetadata(version))
}

func rulesCommand(args []string) error {
	targets := compositor.Compositors
	if len(args) > 0 {
		targets = nil
		for _, arg := range args {
			targets = append(targets, compositor.Compositor(arg))
		}
	}
	for _, target := range targets {
		rules, err := compositor.Rules(target)
		if err != nil {
			return err
		}
		fmt.Printf("# %s\n%s", target, rules)
	}
	return nil
}
