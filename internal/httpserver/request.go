package httpserver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/config"
	"github.com/akyairhashvil/lighttrack/internal/models"
	"github.com/akyairhashvil/lighttrack/internal/util"
	"github.com/gin-gonic/gin"
)

type taskReq struct {
	TaskName string `json:"task_name"`
}

type updateReq struct {
	TaskName  string  `json:"task_name"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type intervalResp struct {
	ID              int64   `json:"id"`
	TaskName        string  `json:"task_name"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time"`
	DurationSeconds int64   `json:"duration_seconds"`
}

type statsResp struct {
	TaskName     string `json:"task_name"`
	TotalSeconds int64  `json:"total_seconds"`
	EntryCount   int    `json:"entry_count"`
}

type statusResp struct {
	IsRunning      bool    `json:"is_running"`
	CurrentTask    *string `json:"current_task"`
	ID             int64   `json:"id,omitempty"`
	StartTime      string  `json:"start_time,omitempty"`
	ElapsedSeconds int64   `json:"elapsed_seconds"`
}

type startResp struct {
	ID       int64 `json:"id"`
	Switched bool  `json:"switched,omitempty"`
}

type successResp struct {
	Success bool `json:"success"`
}

func taskName(raw string) (string, error) {
	return util.TaskName(raw, config.MaxTaskNameLength)
}

func (r updateReq) parse() (string, time.Time, *time.Time, error) {
	name, err := taskName(r.TaskName)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	start, err := util.ParseTimestamp(r.StartTime)
	if err != nil {
		return "", time.Time{}, nil, fmt.Errorf("start_time: %w", err)
	}
	if r.EndTime == nil || strings.TrimSpace(*r.EndTime) == "" {
		return name, start, nil, nil
	}
	end, err := util.ParseTimestamp(*r.EndTime)
	if err != nil {
		return "", time.Time{}, nil, fmt.Errorf("end_time: %w", err)
	}
	return name, start, &end, nil
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return id, nil
}

// queryDate reads ?date=, defaulting to today.
func (srv *Server) queryDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return util.StartOfDay(srv.now()), nil
	}
	return util.ParseDate(raw)
}

// queryRange reads ?preset= or ?from=&to=. A missing to means a single day.
func (srv *Server) queryRange(c *gin.Context) (util.DateRange, error) {
	if preset := c.Query("preset"); preset != "" {
		return util.PresetRange(preset, srv.now())
	}
	rawFrom, rawTo := c.Query("from"), c.Query("to")
	if rawFrom == "" {
		return util.DateRange{}, errors.New("from is required")
	}
	from, err := util.ParseDate(rawFrom)
	if err != nil {
		return util.DateRange{}, err
	}
	to := from
	if rawTo != "" {
		if to, err = util.ParseDate(rawTo); err != nil {
			return util.DateRange{}, err
		}
	}
	return util.DateRange{From: from, To: to}, nil
}

func (srv *Server) queryWindow(c *gin.Context) (int, error) {
	raw := c.Query("days")
	if raw == "" {
		return srv.recentWindow, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid days %q", raw)
	}
	return days, nil
}

func newIntervalResp(i models.TimeInterval) intervalResp {
	resp := intervalResp{
		ID:              i.ID,
		TaskName:        i.TaskName,
		StartTime:       i.StartTime.Format(config.TimestampLayout),
		DurationSeconds: i.DurationSeconds,
	}
	if i.EndTime != nil {
		resp.EndTime = util.Ptr(i.EndTime.Format(config.TimestampLayout))
	}
	return resp
}

func newIntervalsResp(list []models.TimeInterval) []intervalResp {
	out := make([]intervalResp, 0, len(list))
	for _, i := range list {
		out = append(out, newIntervalResp(i))
	}
	return out
}

func newStatsResp(list []models.TaskStats) []statsResp {
	out := make([]statsResp, 0, len(list))
	for _, s := range list {
		out = append(out, statsResp{TaskName: s.TaskName, TotalSeconds: s.TotalSeconds, EntryCount: s.EntryCount})
	}
	return out
}

func (srv *Server) newStatusResp(active *models.TimeInterval) statusResp {
	if active == nil {
		return statusResp{}
	}
	return statusResp{
		IsRunning:      true,
		CurrentTask:    util.Ptr(active.TaskName),
		ID:             active.ID,
		StartTime:      active.StartTime.Format(config.TimestampLayout),
		ElapsedSeconds: int64(active.Elapsed(srv.now()) / time.Second),
	}
}
