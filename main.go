package main

import (
	"encoding/json"
	"log"
	"os"

	"mini_web/internal/bootstrap"
	"mini_web/internal/config"
	"mini_web/internal/http/request"
	"mini_web/internal/http/response"
	"mini_web/internal/logger"
	"mini_web/internal/router"

	"go.uber.org/zap"
)

func index(req *request.Request) (*response.Response, error) {
	return response.New("<h1>欢迎使用 Mini Web 框架</h1><p>这是一个简单的Web框架示例</p>")
}

func hello(req *request.Request) (*response.Response, error) {
	return response.NewJSON(map[string]string{"message": "你好，世界！", "status": "success"})
}

func echo(req *request.Request) (*response.Response, error) {
	body, _ := req.Body()
	if !json.Valid([]byte(body)) {
		return nil, response.Fail(map[string]string{"error": "无效的JSON数据"}, response.WithStatus(400))
	}
	return response.NewJSON(map[string]any{"echo": json.RawMessage(body), "received": true})
}

func custom(req *request.Request) (*response.Response, error) {
	return response.New("<h1>自定义响应</h1>",
		response.WithStatus(201),
		response.WithHeader("X-Custom-Header", "custom_value"),
	)
}

func fail(req *request.Request) (*response.Response, error) {
	return nil, response.Fail(map[string]string{"error": "这是一个示例错误"})
}

func routes(r *router.Router) error {
	if err := r.Get(`/`, index); err != nil {
		return err
	}
	if err := r.Get(`/api/hello`, hello); err != nil {
		return err
	}
	if err := r.Post(`/api/echo`, echo); err != nil {
		return err
	}
	if err := r.Get(`/custom`, custom); err != nil {
		return err
	}
	return r.Get(`/error`, fail)
}

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	conf, err := config.MustLoad()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	l, err := logger.New(conf.LogLevel(), conf.LogDevelopment())
	if err != nil {
		log.Fatalf("Failed to create logger: %s", err)
	}
	defer func() {
		_ = l.Sync()
	}()

	r := router.New()
	if err = routes(r); err != nil {
		l.Fatal("Failed to register routes", zap.Error(err))
	}

	if err = bootstrap.New(conf, r, l).Run(); err != nil {
		l.Fatal("Application error", zap.Error(err))
	}
}
