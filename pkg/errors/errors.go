// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 形式概念分析（FCA）エンジンの入力検証エラー、内部不変条件の違反、
// 二つの列挙アルゴリズム間の不一致を構造化された形で表現します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("gofca-warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// ConsistencyViolationなどの警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
// nilを渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// ConsistencyViolation は二つの概念列挙アルゴリズムが異なる概念集合を返した場合の警告です。
// どちらかのアルゴリズムの実装バグを示すため、黙って無視してはいけません。
type ConsistencyViolation struct {
	Left       string
	Right      string
	LeftCount  int
	RightCount int
}

func (w *ConsistencyViolation) Error() string {
	return fmt.Sprintf("gofca: concept sets disagree: %s produced %d concepts, %s produced %d",
		w.Left, w.LeftCount, w.Right, w.RightCount)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *ConsistencyViolation) MarshalZerologObject(e *zerolog.Event) {
	e.Str("left", w.Left).
		Int("left_count", w.LeftCount).
		Str("right", w.Right).
		Int("right_count", w.RightCount).
		Str("type", "ConsistencyViolation")
}

// NewConsistencyViolation は新しいConsistencyViolationを作成します。
func NewConsistencyViolation(left string, leftCount int, right string, rightCount int) *ConsistencyViolation {
	return &ConsistencyViolation{Left: left, LeftCount: leftCount, Right: right, RightCount: rightCount}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// InvalidContextError は形式文脈 (G, M, I) の構築時に入力が不正だった場合のエラーです。
// 回復不能であり、呼び出し側が入力を修正する必要があります。
type InvalidContextError struct {
	Op     string
	Reason string
	Row    int // -1 if not tied to a cell
	Col    int // -1 if not tied to a cell
	Err    error
}

func (e *InvalidContextError) Error() string {
	msg := fmt.Sprintf("gofca: %s: invalid context: %s", e.Op, e.Reason)
	if e.Row >= 0 && e.Col >= 0 {
		msg = fmt.Sprintf("%s at (%d, %d)", msg, e.Row, e.Col)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *InvalidContextError) Unwrap() error {
	return e.Err
}

// Is は errors.Is(err, ErrInvalidContext) を成立させます。
func (e *InvalidContextError) Is(target error) bool {
	return target == ErrInvalidContext
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidContextError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "InvalidContextError")
	if e.Row >= 0 && e.Col >= 0 {
		event.Int("row", e.Row).Int("col", e.Col)
	}
}

// NewInvalidContextError は新しいInvalidContextErrorを作成し、スタックトレースを付与します。
func NewInvalidContextError(op, reason string) error {
	return errors.WithStack(&InvalidContextError{Op: op, Reason: reason, Row: -1, Col: -1})
}

// NewInvalidCellError は特定のセル (row, col) に起因するInvalidContextErrorを作成します。
func NewInvalidCellError(op, reason string, row, col int) error {
	return errors.WithStack(&InvalidContextError{Op: op, Reason: reason, Row: row, Col: col})
}

// WrapInvalidContext は原因となるエラーをInvalidContextErrorで包みます。
func WrapInvalidContext(op, reason string, cause error) error {
	return errors.WithStack(&InvalidContextError{Op: op, Reason: reason, Row: -1, Col: -1, Err: cause})
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows (objects), 1 for columns (attributes)
}

func (e *DimensionError) Error() string {
	axisName := "attributes"
	if e.Axis == 0 {
		axisName = "objects"
	}
	return fmt.Sprintf("gofca: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "attributes"
	if e.Axis == 0 {
		axisName = "objects"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("gofca: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	return errors.WithStack(&ValidationError{ParamName: param, Reason: reason, Value: value})
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("gofca: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	return errors.WithStack(&ValueError{Op: op, Message: message})
}

// ConceptInvariantError は列挙アルゴリズムが生成した (A, B) が形式概念の条件
// up(A) = B かつ down(B) = A を満たさなかった場合のエラーです。実装バグを示します。
type ConceptInvariantError struct {
	Algorithm string
	Extent    string
	Intent    string
}

func (e *ConceptInvariantError) Error() string {
	return fmt.Sprintf("gofca: %s: (%s, %s) is not a formal concept", e.Algorithm, e.Extent, e.Intent)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ConceptInvariantError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("algorithm", e.Algorithm).
		Str("extent", e.Extent).
		Str("intent", e.Intent).
		Str("type", "ConceptInvariantError")
}

// NewConceptInvariantError は新しいConceptInvariantErrorを作成し、スタックトレースを付与します。
func NewConceptInvariantError(algorithm string, extent, intent fmt.Stringer) error {
	return errors.WithStack(&ConceptInvariantError{
		Algorithm: algorithm,
		Extent:    extent.String(),
		Intent:    intent.String(),
	})
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrInvalidContext は形式文脈の入力が不正な場合のエラーです。
	ErrInvalidContext = New("invalid formal context")

	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
