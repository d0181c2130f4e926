package statistics

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/filmwire/filmwire/app/models"
	"github.com/filmwire/filmwire/internal/pkg/cache"
	"github.com/filmwire/filmwire/internal/pkg/database"
)

const (
	CacheKeyVideosTotal = "statistics:videos:total"
	CacheKeyVideosDaily = "statistics:videos:daily:%s" // Format with date YYYY-MM-DD
	CacheKeyUsers       = "statistics:users:total"
	CacheExpiration     = 30 * time.Minute
)

// StatisticsData holds the aggregate numbers shown on the public site.
type StatisticsData struct {
	TodayVideos int `json:"today_videos"`
	TotalUsers  int `json:"total_users"`
	TotalVideos int `json:"total_videos"`
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// ShouldUpdateCache reports whether the cached totals are stale.
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cached totals when they are stale.
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		if err := UpdateStatisticsCache(); err != nil {
			log.Printf("Error updating statistics cache: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// ResetCacheUpdateTimer forces the next UpdateCacheIfNeeded to refresh.
func ResetCacheUpdateTimer() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	lastCacheUpdate = time.Time{}
}

// UpdateStatisticsCache recounts all totals and stores them in the cache.
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var totalVideos int64
	if err := db.Model(&models.Video{}).Count(&totalVideos).Error; err != nil {
		log.Printf("Error counting total videos: %v", err)
		return err
	}

	var todayVideos int64
	today := time.Now().Format("2006-01-02")
	todayStart, _ := time.Parse("2006-01-02", today)
	todayEnd := todayStart.Add(24 * time.Hour)

	if err := db.Model(&models.Video{}).Where("upload_date BETWEEN ? AND ?", todayStart, todayEnd).Count(&todayVideos).Error; err != nil {
		log.Printf("Error counting today's videos: %v", err)
		return err
	}

	var totalUsers int64
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		log.Printf("Error counting total users: %v", err)
		return err
	}

	if err := cache.Set(CacheKeyVideosTotal, strconv.FormatInt(totalVideos, 10), CacheExpiration); err != nil {
		return err
	}

	dailyKey := fmt.Sprintf(CacheKeyVideosDaily, today)
	if err := cache.Set(dailyKey, strconv.FormatInt(todayVideos, 10), CacheExpiration); err != nil {
		return err
	}

	if err := cache.Set(CacheKeyUsers, strconv.FormatInt(totalUsers, 10), CacheExpiration); err != nil {
		return err
	}

	return nil
}

// GetTotalVideos returns the total number of videos from cache or database
func GetTotalVideos() int {
	val, err := cache.Get(CacheKeyVideosTotal)
	if err != nil {
		var count int64
		if err := database.GetDB().Model(&models.Video{}).Count(&count).Error; err != nil {
			log.Printf("Error counting total videos: %v", err)
			return 0
		}
		_ = cache.Set(CacheKeyVideosTotal, strconv.FormatInt(count, 10), CacheExpiration)
		return int(count)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}

	return int(count)
}

// GetTodayVideos returns the number of videos uploaded today from cache or database
func GetTodayVideos() int {
	today := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf(CacheKeyVideosDaily, today)

	val, err := cache.Get(dailyKey)
	if err != nil {
		var count int64
		todayStart, _ := time.Parse("2006-01-02", today)
		todayEnd := todayStart.Add(24 * time.Hour)

		if err := database.GetDB().Model(&models.Video{}).Where("upload_date BETWEEN ? AND ?", todayStart, todayEnd).Count(&count).Error; err != nil {
			log.Printf("Error counting today's videos: %v", err)
			return 0
		}
		_ = cache.Set(dailyKey, strconv.FormatInt(count, 10), CacheExpiration)
		return int(count)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}

	return int(count)
}

// GetTotalUsers returns the total number of users from cache or database
func GetTotalUsers() int {
	val, err := cache.Get(CacheKeyUsers)
	if err != nil {
		var count int64
		if err := database.GetDB().Model(&models.User{}).Count(&count).Error; err != nil {
			log.Printf("Error counting total users: %v", err)
			return 0
		}
		_ = cache.Set(CacheKeyUsers, strconv.FormatInt(count, 10), CacheExpiration)
		return int(count)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}

	return int(count)
}

// GetStatisticsData returns all statistics data as StatisticsData structure
func GetStatisticsData() StatisticsData {
	UpdateCacheIfNeeded()

	return StatisticsData{
		TodayVideos: GetTodayVideos(),
		TotalUsers:  GetTotalUsers(),
		TotalVideos: GetTotalVideos(),
	}
}
