package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"github.com/lunchly/core/internal/config"
	"github.com/lunchly/core/internal/db"
	"github.com/lunchly/core/internal/model"
	"github.com/lunchly/core/internal/repository"
	"github.com/lunchly/core/internal/service"
)

func main() {
	// 1. Подхватываем .env, если он есть, затем конфиг из env.
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("load db config: %v", err)
	}
	srvCfg := config.LoadServerConfig()

	// 2. Подключаемся к БД через GORM.
	gormDB, err := db.NewGormDB(dbCfg)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}

	// 3. Миграции моделей.
	if err := model.AutoMigrate(gormDB); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("sql DB: %v", err)
	}
	defer sqlDB.Close()

	// 4. Репозитории (реализации на GORM).
	reservationRepo := repository.NewGormReservationRepository(gormDB)
	customerRepo := repository.NewGormCustomerRepository(gormDB)

	// 5. gRPC-сервис броней.
	reservationSvc := service.NewReservationService(reservationRepo, customerRepo)

	// 6. Настраиваем gRPC-сервер.
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(service.RequestLogger()))
	service.RegisterReservationServiceServer(grpcServer, reservationSvc)

	lis, err := net.Listen("tcp", srvCfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen %s: %v", srvCfg.GRPCAddr, err)
	}

	log.Printf("lunchly gRPC server listening on %s (db=%s)", srvCfg.GRPCAddr, dbCfg.Driver)

	// 7. Запускаем сервер в горутине.
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	// 8. Грейсфул-шатдаун по сигналу.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down gRPC server...")
	grpcServer.GracefulStop()
}
