// Package report builds the daily-report prompt and persists the generated text.
package report

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dailylog/internal/analysis"
	"github.com/alexanderramin/dailylog/internal/domain"
)

// TopN is the number of activities listed in section 3 of the prompt.
const TopN = 5

// FormatHoursMinutes renders seconds as "H時間M分", truncating seconds.
func FormatHoursMinutes(seconds int) string {
	return fmt.Sprintf("%d時間%d分", seconds/3600, (seconds%3600)/60)
}

// FormatTopList renders the numbered "1. name - H時間M分" lines.
func FormatTopList(entries []analysis.Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%d. %s - %s", i+1, e.Label, FormatHoursMinutes(e.Seconds))
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt embeds the raw export text and the top activities of summary
// into the daily-report instruction template.
func BuildPrompt(raw string, summary analysis.Summary) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(promptPreamble)
	b.WriteString(raw)
	if !strings.HasSuffix(raw, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(domain.RequiredColumns, ", "))
	b.WriteString("\n\n")
	b.WriteString(promptInstructions)
	b.WriteString(promptSectionHighlights)
	b.WriteString(promptSectionCategories)
	b.WriteString("## 3. アプリケーション利用時間 Top 5\n")
	b.WriteString(FormatTopList(summary.TopActivities(TopN)))
	b.WriteString("\n\n")
	b.WriteString(promptSectionHourly)
	b.WriteString(promptSectionReflection)
	return b.String()
}

const promptPreamble = `重要事項:もしデータがない場合は、データなしとだけ報告してください。
以下はPCのアプリケーション利用履歴です。CSVのカラム構造は次の通りです：
`

const promptInstructions = `このデータから、以下の日報テンプレートに従って日本語で日報を作成してください。
日報は、自己の活動を客観的に振り返り、生産性向上や課題発見、翌日以降の計画立案に役立てることを目的とします。
(内は指示内容です。出力データには含めないでください。)

`

const promptSectionHighlights = `## 1. 本日の活動ハイライト
（ManicTimeのログから、本日特に時間を費やした活動や、特徴的な行動パターンを3-5行程度で要約してください。時間はできるだけ正確に積算してください。単なるアプリ使用時間の報告ではなく、何に取り組んでいたのかが推測できるような記述を心がけてください。「ManicTimeのデータ活用方法の調査とスクリプト作成に注力し、Vivaldiでの情報収集とCursorでの開発作業が中心でした。合間にはXの閲覧も見られました。」のような形式を参考にしてください。）
（一日のPC作業の合計時間を表示し、働き過ぎ等のコメントを残してください。）

`

const promptSectionCategories = `## 2. 主要な活動カテゴリと所要時間
（アプリケーション名だけでなく、ウィンドウタイトルや連続使用時間などから、ユーザーが行っていたと思われる主要な活動カテゴリを3～5つ程度に分類し、それぞれの活動に費やされたおおよその合計時間を記載してください。例えば、「ManicTime関連作業（Vivaldi, Cursor, ManicTime本体, Windows Terminalなど）- 約X時間XX分」「情報収集・調査（Vivaldi - 技術ブログ, ドキュメント閲覧など）- 約Y時間YY分」「SNS・休憩（Vivaldi - X, Spotifyなど）- 約Z時間ZZ分」のように、関連アプリをグルーピングして記述してください。）

`

const promptSectionHourly = `## 4. 各時間ごとの作業内容
(ManicTimeのログから、各時間ごとの作業内容を記載してください。1:00-2:00,2:00-3:00のように1時間ごとに分けて記載してください。作業が連続して存在しない場合は、その時間は空白としてください。1時間程度なら休憩と記載)

`

const promptSectionReflection = `## 5. 振り返りとネクストアクション
(自己の活動を客観的に分析したデータを各項目2~3行程度で記載してください。)
*   **今日の主な成果・達成できたこと:**
    *
*   **課題や反省点、改善したいこと (例: 集中が途切れた要因、非効率だった作業など):**
    *
*   **今日の活動で得た気付きや学び (例: 新しい知識、便利なツール、作業のコツなど):**
    *
*   **明日以降取り組むこと・目標:**
    *
*   **その他特記事項:**
    *

`
