// Package main provides localization for the framegrab CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Download a video and extract still frames at a fixed interval": "動画をダウンロードし、一定間隔で静止画フレームを抽出",

		// Flags
		"Output directory for extracted frames":                  "抽出フレームの出力ディレクトリ",
		"Extraction interval in seconds":                         "抽出間隔（秒）",
		"JPEG quality (1-100)":                                   "JPEG品質（1-100）",
		"Downsample frames wider than this (0 = keep original size)": "この幅を超えるフレームを縮小（0 = 元のサイズを維持）",
		"Start of the extraction window in seconds":              "抽出範囲の開始位置（秒）",
		"End of the extraction window in seconds (default: end of video)": "抽出範囲の終了位置（秒、デフォルト: 動画の最後）",
		"Skip playback during extraction":                        "抽出中の再生をスキップ",
		"Skip writing metadata and report files":                 "メタデータとレポートファイルの出力をスキップ",
		"Path to a YAML config file":                             "YAML設定ファイルのパス",
		"Path to the ffmpeg executable":                          "ffmpeg実行ファイルのパス",
		"Path to the ffprobe executable":                         "ffprobe実行ファイルのパス",
		"Log level (debug, info, warn, error)":                   "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                "全てのログ出力を抑制",

		// Runtime messages
		"Extracting frames from %s every %gs": "%s から %g 秒間隔でフレームを抽出中",
		"Interrupted, shutting down...":       "中断されました。シャットダウン中...",
		"Download progress: %.1f%%":           "ダウンロード進捗: %.1f%%",
		"Saved %d frames to %s":               "%d フレームを %s に保存しました",
		"Failed to write reports: %s":         "レポートの書き込みに失敗しました: %s",

		// Fetch stage
		"URL might not be a video file":           "URLは動画ファイルではない可能性があります",
		"Downloading video from: %s":              "動画をダウンロード中: %s",
		"Could not remove partial download: %s":   "不完全なダウンロードを削除できませんでした: %s",
		"Video downloaded successfully: %s":       "動画のダウンロードが完了しました: %s",

		// Sample stage
		"Extracting frames from %.1fs to %.1fs":            "%.1f 秒から %.1f 秒までフレームを抽出中",
		"Frame range: %d to %d":                            "フレーム範囲: %d から %d",
		"Extraction interrupted":                           "抽出が中断されました",
		"Frame read failed at %d: %s":                      "フレーム %d の読み込みに失敗しました: %s",
		"Extraction progress: %.1f%%":                      "抽出進捗: %.1f%%",
		"Frame extraction completed. Total frames saved: %d": "フレーム抽出が完了しました。保存フレーム数: %d",
		"Failed to save frame at %.1fs: %s":                "%.1f 秒のフレームの保存に失敗しました: %s",
		"Saved: %s":                                        "保存しました: %s",

		// Playback stage
		"Playing video... Controls:":                     "動画を再生中... 操作方法:",
		"'q' - quit, 'p' - pause/unpause, 'r' - restart": "'q' - 終了, 'p' - 一時停止/再開, 'r' - 最初から",
		"'f' - fast forward 10s, 'b' - rewind 10s":       "'f' - 10秒早送り, 'b' - 10秒巻き戻し",
		"Resumed":              "再開しました",
		"Paused":               "一時停止しました",
		"Restart seek failed: %s": "先頭へのシークに失敗しました: %s",
		"Video restarted":      "動画を最初から再生します",
		"Forward seek failed: %s": "早送りシークに失敗しました: %s",
		"Fast forward 10s":     "10秒早送り",
		"Rewind seek failed: %s":  "巻き戻しシークに失敗しました: %s",
		"Rewind 10s":           "10秒巻き戻し",
		"Render failed: %s":    "描画に失敗しました: %s",

		// Orchestrator messages
		"Starting extraction run":                      "抽出処理を開始します",
		"Could not remove temporary video file: %s":    "一時動画ファイルを削除できませんでした: %s",
		"Cleaned up downloaded video: %s":              "ダウンロードした動画を削除しました: %s",
		"Playback failed: %s":                          "再生に失敗しました: %s",
		"Process interrupted by user":                  "ユーザーにより処理が中断されました",
		"Extraction run completed: %d frames saved":    "抽出処理が完了しました: %d フレームを保存",
	})
}
