// Package output serializes built tables for the static front end.
package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/PvPTrack_Go/internal/builder"
	"github.com/osse101/PvPTrack_Go/internal/logger"
	"github.com/osse101/PvPTrack_Go/internal/utils"
)

type table struct {
	variable string
	file     string
	data     any
}

func tables(res *builder.Result) []table {
	return []table{
		{VarLevels, FileLevels, res.Levels},
		{VarRewardMeta, FileRewardMeta, res.RewardMeta},
		{VarLootTables, FileLootTables, res.LootTables},
		{VarLootContents, FileLootContents, res.LootContents},
		{VarBuckets, FileBuckets, res.Buckets},
	}
}

// DataJS renders the tables as a script assigning one window global per
// table, one statement per line.
func DataJS(res *builder.Result) ([]byte, error) {
	if res == nil {
		return nil, errors.New(ErrMsgNilResult)
	}
	var buf bytes.Buffer
	for _, t := range tables(res) {
		js, err := utils.MarshalCompact(t.data)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrMsgEncode, t.variable, err)
		}
		buf.WriteString("window.")
		buf.WriteString(t.variable)
		buf.WriteString("=")
		buf.Write(js)
		buf.WriteString(";\n")
	}
	return buf.Bytes(), nil
}

// Write stores data.js and one compact JSON file per table under dir,
// creating dir when needed. It returns the written paths.
func Write(ctx context.Context, dir string, res *builder.Result) ([]string, error) {
	if res == nil {
		return nil, errors.New(ErrMsgNilResult)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgCreateDir, dir, err)
	}

	log := logger.FromContext(ctx)

	js, err := DataJS(res)
	if err != nil {
		return nil, err
	}
	jsPath := filepath.Join(dir, FileDataJS)
	if err := os.WriteFile(jsPath, js, 0o644); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgWriteFile, jsPath, err)
	}
	log.Debug(LogMsgOutputWritten, LogFieldPath, jsPath, LogFieldBytes, len(js))

	written := []string{jsPath}
	for _, t := range tables(res) {
		p := filepath.Join(dir, t.file)
		if err := utils.SaveCompactJSON(p, t.data); err != nil {
			return nil, err
		}
		log.Debug(LogMsgOutputWritten, LogFieldPath, p)
		written = append(written, p)
	}

	log.Info(LogMsgOutputWritten, LogFieldPath, dir, LogFieldFiles, len(written))
	return written, nil
}
