package logutil

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// Level 日志级别，实现了 pflag.Value 接口，可以直接绑定到 cobra 的 flag 上
type Level int

// 定义日志级别
const (
	DEBUG Level = iota // 0
	INFO               // 1
	WARN               // 2
	ERROR              // 3
)

// 定义日志级别映射字符串
var LOG_LEVELS = map[string]Level{
	"DEBUG": DEBUG,
	"INFO":  INFO,
	"WARN":  WARN,
	"ERROR": ERROR,
}

// 级别到名字的固定表，String 不依赖 map 的遍历顺序
var levelNames = [...]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

var (
	logger       *log.Logger
	logFile      *os.File
	mu           sync.Mutex
	currentLevel = WARN // 默认日志级别
)

func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// 为了让 VarP 接收自定义类型，实现 flag.Value 接口(String Set Type)即可
func (l *Level) Set(val string) error {
	level, err := ParseLogLevel(val)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

func (l *Level) Type() string {
	return "level"
}

// ParseLogLevel 解析日志级别名字，大小写不敏感
func ParseLogLevel(name string) (Level, error) {
	level, ok := LOG_LEVELS[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return WARN, fmt.Errorf("无效的日志级别: %q (DEBUG/INFO/WARN/ERROR)", name)
	}
	return level, nil
}

// InitLogger 初始化日志，允许指定输出目标（stdout stderr 或 文件）
// 再次调用会关闭之前打开的日志文件并替换输出目标
func InitLogger(output string, level Level) error {
	mu.Lock()
	defer mu.Unlock()

	closeFileLocked()
	var initErr error
	switch output {
	case "", "stderr":
		logFile = os.Stderr
	case "stdout":
		logFile = os.Stdout
	default:
		f, err := os.OpenFile(
			// 以追加模式打开日志文件，不会覆盖已有内容
			output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			initErr = fmt.Errorf("无法创建日志文件 %s: %w", output, err)
			logFile = os.Stderr
		} else {
			logFile = f
		}
	}
	logger = log.New(logFile, "", log.LstdFlags)
	currentLevel = level
	return initErr
}

// SetOutput 直接替换日志输出目标，测试里用来捕获日志
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeFileLocked()
	logger = log.New(w, "", 0)
}

// 设置日志级别
func SetLogLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()
	currentLevel = level
}

// Enabled 判断某个级别的日志当前是否会输出，用于跳过昂贵的格式化
func Enabled(level Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return level >= currentLevel
}

// logMessage 记录日志，**仅输出符合当前级别的日志**
func logMessage(level Level, msg string, args ...any) {
	if !Enabled(level) {
		return
	}

	_, file, line, _ := runtime.Caller(2) // 获取真正调用的文件+行号
	relPath := filepath.Base(file)

	var formattedArgs []any
	for _, arg := range args {
		// 实现了 String() 的类型按自己的方式打印
		if s, ok := arg.(fmt.Stringer); ok {
			formattedArgs = append(formattedArgs, s.String())
			continue
		}
		if e, ok := arg.(error); ok {
			formattedArgs = append(formattedArgs, e.Error())
			continue
		}

		v := reflect.ValueOf(arg)
		if v.Kind() == reflect.Ptr && !v.IsNil() {
			v = v.Elem()
		}

		switch v.Kind() {
		case reflect.Struct:
			formattedArgs = append(formattedArgs, PrintStruct(arg, false))
		case reflect.Slice, reflect.Map:
			// 如果是集合类型，转换为 JSON
			jsonData, err := json.MarshalIndent(arg, "", "    ")
			if err != nil {
				formattedArgs = append(
					formattedArgs, fmt.Sprintf("无法格式化: %v", err))
			} else {
				formattedArgs = append(formattedArgs, string(jsonData))
			}
		default:
			formattedArgs = append(formattedArgs, arg)
		}
	}

	formattedMsg := fmt.Sprintf(msg, formattedArgs...)
	mu.Lock()
	defer mu.Unlock()
	// 没有初始化时先写标准错误，不占用 InitLogger
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	logger.Printf("[%s:%d] %s", relPath, line, formattedMsg)
}

// Info 记录 INFO 日志
func Info(msg string, args ...any) {
	logMessage(INFO, "[INFO] "+msg, args...)
}

// Warn 记录 WARN 日志
func Warn(msg string, args ...any) {
	logMessage(WARN, "[WARN] "+msg, args...)
}

// Error 记录 ERROR 日志，附带调用堆栈
func Error(msg string, args ...any) {
	size := 1024
	for {
		buf := make([]byte, size)
		n := runtime.Stack(buf, false)
		if n < size {
			// 堆栈里可能有 % 字符，作为参数传入避免被当成格式串
			logMessage(ERROR, "[ERR] "+msg+"\n调用堆栈:\n%s", append(args, string(buf[:n]))...)
			return
		}
		// 扩展缓冲区大小，倍增策略
		size *= 2
	}
}

// Debug 记录 DEBUG 日志
func Debug(msg string, args ...any) {
	logMessage(DEBUG, "[DBG] "+msg, args...)
}

// 关闭日志文件（如果有的话），之后的日志回到标准错误
func CloseLogger() error {
	mu.Lock()
	defer mu.Unlock()
	return closeFileLocked()
}

func closeFileLocked() error {
	var err error
	if logFile != nil && logFile != os.Stdout && logFile != os.Stderr {
		err = logFile.Close()
		logger = nil
	}
	logFile = nil
	return err
}

// 递归格式化结构体信息
func formatStruct(s any, indent string) string {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return fmt.Sprintf("%s非结构体类型: %#v\n", indent, v.Kind())
	}
	t := v.Type()

	var builder strings.Builder
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		value := v.Field(i)

		if value.Kind() != reflect.Struct {
			builder.WriteString(fmt.Sprintf("%s%s: %#v\n", indent, field.Name, value))
		} else {
			// 如果是嵌套结构体,先打印标头,再递归处理
			builder.WriteString(fmt.Sprintf("%s%s:\n", indent, field.Name))
			builder.WriteString(formatStruct(value.Interface(), indent+"    "))
		}
	}

	return builder.String()
}

// 打印结构体信息（支持控制是否输出到标准输出）
func PrintStruct(s any, printToStdout bool) string {
	result := formatStruct(s, "")

	if printToStdout {
		fmt.Print(result)
	}

	return result
}
