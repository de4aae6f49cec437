package logger

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
}

// readLoggerProperties 讀logger.properties 沒有檔案就用預設值
func readLoggerProperties() (string, int, int, int, bool, string) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath("./")

	v.SetDefault("logFilename", "pingpong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 7)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")

	// 讀不到設定檔不是致命錯誤 遊戲照樣能跑
	_ = v.ReadInConfig()

	return cast.ToString(v.Get("logFilename")),
		cast.ToInt(v.Get("maxSize")),
		cast.ToInt(v.Get("maxBackups")),
		cast.ToInt(v.Get("maxAge")),
		cast.ToBool(v.Get("compress")),
		cast.ToString(v.Get("level"))
}

func (l Logger) Init() {
	logFilename, maxSize, maxBackups, maxAge, compress, level := readLoggerProperties()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	// 畫面被tcell佔住 log只能進檔案
	logrus.SetOutput(&lumberjack.Logger{
		Filename:   logFilename,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compress,
	})

	switch level {
	case "Trace":
		logrus.SetLevel(logrus.TraceLevel)
	case "Debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "Warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "Error":
		logrus.SetLevel(logrus.ErrorLevel)
	case "Fatal":
		logrus.SetLevel(logrus.FatalLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func (l Logger) Info(message string) {
	logrus.Info(message)
}

func (l Logger) Error(message string) {
	logrus.Error(message)
}

func (l Logger) Debug(message string) {
	logrus.Debug(message)
}

func (l Logger) Warn(message string) {
	logrus.Warn(message)
}

// ErrorWithDetail 帶錯誤內容的log 音效失敗時用
func (l Logger) ErrorWithDetail(message string, err error) {
	logrus.WithField("error", err.Error()).Error(message)
}
