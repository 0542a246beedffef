// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/cmdtree/internal/ctxlog"
	"github.com/vk/cmdtree/internal/fsutil"
	"github.com/vk/cmdtree/internal/tree"
)

// LoadFile parses and builds the command tree defined in a single manifest
// file. The file must define exactly one top-level command.
func LoadFile(ctx context.Context, filePath string) (*tree.Command, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding manifest file.", "path", filePath)

	parser := hclparse.NewParser()
	blocks, err := decodeFile(parser, filePath)
	if err != nil {
		return nil, err
	}
	return buildRoot(blocks)
}

// LoadDir finds all .hcl files under the given path and builds the command
// tree they define. Exactly one top-level command must be declared across all
// files; its subcommand blocks may be spread over any of them.
func LoadDir(ctx context.Context, dirPath string) (*tree.Command, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading manifests from path.", "path", dirPath)

	files, err := fsutil.FindFilesByExtension(dirPath, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find manifest files in %s: %w", dirPath, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl manifest files found in %s", dirPath)
	}

	parser := hclparse.NewParser()
	var blocks []*commandBlock
	for _, file := range files {
		fileBlocks, err := decodeFile(parser, file)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, fileBlocks...)
	}
	logger.Debug("Manifests decoded.", "files", len(files), "root_blocks", len(blocks))
	return buildRoot(blocks)
}

func decodeFile(parser *hclparse.Parser, filePath string) ([]*commandBlock, error) {
	file, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %s", filePath, diags.Error())
	}

	var parsed manifestFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %s", filePath, diags.Error())
	}
	return parsed.Commands, nil
}

func buildRoot(blocks []*commandBlock) (*tree.Command, error) {
	if len(blocks) != 1 {
		return nil, fmt.Errorf("manifest must define exactly one root command, found %d", len(blocks))
	}
	return buildCommand(blocks[0])
}
