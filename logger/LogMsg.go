package logger

const MatchStartMsg = "比賽開始！分數歸零"
const MatchOverMsg = "比賽結束！贏家 %s 比分 %d:%d"

const PhaseChangedMsg = "狀態轉換 %s -> %s"

const SoundInitFailedMsg = "音效裝置初始化失敗 改用靜音模式"
const SoundPlayFailedMsg = "音效播放失敗 忽略不中斷遊戲"

const ScreenInitFailedMsg = "畫面初始化失敗"
const SettingsLoadedMsg = "設定讀取完成 主題:%s 音效:%t 音樂:%t 音量:%.1f"
